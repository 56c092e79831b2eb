package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/common"
)

func TestCameraHalfExtentAndScale(t *testing.T) {
	c := NewCamera(320, 180, 0.5)
	if got := c.HalfExtent(); got != (mgl32.Vec2{160, 90}) {
		t.Fatalf("expected (160,90), got %v", got)
	}
	c.SetScale(0)
	c.SetScale(-1)
	if c.Scale() != 0.5 {
		t.Fatalf("non-positive scale should be ignored, got %v", c.Scale())
	}
	if NewCamera(1, 1, 0).Scale() != 1 {
		t.Fatalf("zero initial scale should default to 1")
	}
	c.SetProjection(-1, 10)
	if got := c.HalfExtent(); got != (mgl32.Vec2{160, 90}) {
		t.Fatalf("negative projection should be ignored, got %v", got)
	}
	c.SetProjection(100, 50)
	if got := c.HalfExtent(); got != (mgl32.Vec2{50, 25}) {
		t.Fatalf("expected (50,25), got %v", got)
	}
	if got := NewCamera(-5, 10, 1).HalfExtent(); got != (mgl32.Vec2{}) {
		t.Fatalf("negative initial projection should be ignored, got %v", got)
	}
}

func TestCameraBounds(t *testing.T) {
	c := NewCamera(160, 90, 1)
	if _, ok := c.Bounds(); ok {
		t.Fatalf("no level size: expected no bounds")
	}
	c.SetLevelSize(1024, 512)
	b, ok := c.Bounds()
	if !ok || b.Left != 160 || b.Top != 422 {
		t.Fatalf("unexpected bounds %+v ok=%v", b, ok)
	}
}

func TestCameraUpdate(t *testing.T) {
	t.Run("clamped_follow", func(t *testing.T) {
		c := NewCamera(160, 90, 1)
		c.SetLevelSize(1024, 512)
		c.SnapTo(mgl32.Vec3{500, 250, 10})
		for i := 0; i < 1000; i++ {
			c.Update(mgl32.Vec3{-50, 1000, 0}, true, 0.016)
		}
		if c.Position().Sub(mgl32.Vec3{160, 422, 10}).Len() > 1e-3 {
			t.Fatalf("expected camera settled at (160,422,10), got %v", c.Position())
		}
		if c.Mode() != Tracking {
			t.Fatalf("expected tracking mode")
		}
	})

	t.Run("missing_target_is_noop", func(t *testing.T) {
		c := NewCamera(160, 90, 1)
		c.SetLevelSize(1024, 512)
		c.SnapTo(mgl32.Vec3{500, 250, 10})
		c.Update(mgl32.Vec3{900, 400, 0}, true, 0.016)
		pos, vel := c.Position(), c.Velocity()
		c.Update(mgl32.Vec3{}, false, 0.016)
		if c.Position() != pos || c.Velocity() != vel || c.Mode() != Idle {
			t.Fatalf("missing target should leave the camera untouched")
		}
	})

	t.Run("unbounded", func(t *testing.T) {
		c := NewCamera(160, 90, 1)
		c.SetFollow(FollowParameters{Smoothness: 0.05, MaxSpeed: common.Inf()})
		for i := 0; i < 1000; i++ {
			c.Update(mgl32.Vec3{-500, -500, 0}, true, 0.016)
		}
		if c.Position().Sub(mgl32.Vec3{-500, -500, 0}).Len() > 1e-3 {
			t.Fatalf("expected unbounded follow to reach target, got %v", c.Position())
		}
	})
}

func TestCameraSnapTo(t *testing.T) {
	c := NewCamera(100, 100, 1)
	c.SetLevelSize(50, 50)
	c.Update(mgl32.Vec3{10, 10, 0}, true, 0.016)
	c.SnapTo(mgl32.Vec3{-20, 30, 4})
	if c.Position() != (mgl32.Vec3{100, 100, 4}) {
		t.Fatalf("expected degenerate snap to (100,100,4), got %v", c.Position())
	}
	if c.Velocity() != (mgl32.Vec3{}) {
		t.Fatalf("snap should drop velocity, got %v", c.Velocity())
	}
}

func TestCameraViewBottomLeft(t *testing.T) {
	c := NewCamera(160, 90, 1)
	c.SnapTo(mgl32.Vec3{200, 100, 0})
	if got := c.ViewBottomLeft(); got != (mgl32.Vec2{40, 10}) {
		t.Fatalf("expected (40,10), got %v", got)
	}
}
