package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/common"
)

func TestFollowPolicyIdlePreservesState(t *testing.T) {
	p := NewFollowPolicy(DefaultFollowParameters())
	pos := mgl32.Vec3{0, 0, 5}
	target := mgl32.Vec3{10, 4, 0}

	pos = p.Step(pos, target, true, nil, 0.016)
	beforePos, beforeVel := pos, p.State.Velocity
	if p.State.Mode != Tracking {
		t.Fatalf("expected tracking, got %v", p.State.Mode)
	}

	pos = p.Step(pos, mgl32.Vec3{}, false, nil, 0.016)
	if pos != beforePos || p.State.Velocity != beforeVel {
		t.Fatalf("idle tick changed state: pos %v -> %v, vel %v -> %v", beforePos, pos, beforeVel, p.State.Velocity)
	}
	if p.State.Mode != Idle {
		t.Fatalf("expected idle, got %v", p.State.Mode)
	}

	// resuming continues from the preserved velocity
	want, wantVel := SmoothDamp(beforePos, mgl32.Vec3{10, 4, 5}, beforeVel, 0.2, common.Inf(), 0.016)
	pos = p.Step(pos, target, true, nil, 0.016)
	if pos != want || p.State.Velocity != wantVel {
		t.Fatalf("resume mismatch: got %v/%v want %v/%v", pos, p.State.Velocity, want, wantVel)
	}
}

func TestFollowPolicyClampsTarget(t *testing.T) {
	b := NewViewportBounds(mgl32.Vec2{100, 50}, mgl32.Vec2{400, 200})
	p := NewFollowPolicy(FollowParameters{Smoothness: 0.1, MaxSpeed: common.Inf()})
	pos := mgl32.Vec3{200, 100, 1}
	for i := 0; i < 2000; i++ {
		pos = p.Step(pos, mgl32.Vec3{-1000, 1000, 99}, true, &b, 0.016)
	}
	if pos.Sub(mgl32.Vec3{100, 150, 1}).Len() > 1e-3 {
		t.Fatalf("expected to settle on the clamped corner (100,150,1), got %v", pos)
	}
}

func TestFollowPolicyKeepsZ(t *testing.T) {
	p := NewFollowPolicy(DefaultFollowParameters())
	pos := p.Step(mgl32.Vec3{0, 0, 42}, mgl32.Vec3{5, 5, -3}, true, nil, 0.016)
	if pos.Z() != 42 {
		t.Fatalf("camera Z should not follow target, got %v", pos.Z())
	}
}

func TestFollowPolicyReset(t *testing.T) {
	p := NewFollowPolicy(DefaultFollowParameters())
	p.Step(mgl32.Vec3{}, mgl32.Vec3{10, 0, 0}, true, nil, 0.016)
	p.Reset()
	if p.State.Velocity != (mgl32.Vec3{}) || p.State.Mode != Idle {
		t.Fatalf("reset should clear state, got %+v", p.State)
	}
}

func TestModeString(t *testing.T) {
	if Idle.String() != "idle" || Tracking.String() != "tracking" || Mode(9).String() != "unknown" {
		t.Fatalf("unexpected mode strings")
	}
}
