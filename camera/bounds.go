package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/common"
)

// ViewportBounds is the rectangle a viewport centre may occupy while the
// whole viewport stays inside a level anchored at the origin.
type ViewportBounds struct {
	Left, Right float32
	Bottom, Top float32

	degenerateX bool
	degenerateY bool
}

// HalfExtent returns the world-space half size of an orthographic view whose
// projection spans [-right, right] x [-top, top] before zoom scaling.
func HalfExtent(right, top, scale float32) mgl32.Vec2 {
	return mgl32.Vec2{right, top}.Mul(scale)
}

// NewViewportBounds derives the centre bounds for a viewport of half size
// halfExtent inside a level of size levelSize. An axis where the viewport is
// larger than the level collapses to its lower bound.
func NewViewportBounds(halfExtent, levelSize mgl32.Vec2) ViewportBounds {
	b := ViewportBounds{
		Left:   halfExtent.X(),
		Right:  levelSize.X() - halfExtent.X(),
		Bottom: halfExtent.Y(),
		Top:    levelSize.Y() - halfExtent.Y(),
	}
	if b.Right < b.Left {
		b.Right = b.Left
		b.degenerateX = true
	}
	if b.Top < b.Bottom {
		b.Top = b.Bottom
		b.degenerateY = true
	}
	return b
}

// Degenerate reports, per axis, whether the viewport is larger than the level.
func (b ViewportBounds) Degenerate() (x, y bool) {
	return b.degenerateX, b.degenerateY
}

// Clamp keeps p inside the bounds.
func (b ViewportBounds) Clamp(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		common.ClampLowerWins(p.X(), b.Left, b.Right),
		common.ClampLowerWins(p.Y(), b.Bottom, b.Top),
	}
}

// ClampToViewport returns the point closest to desired that keeps a viewport
// of half size halfExtent fully within [0, levelSize]. When the viewport is
// larger than the level on an axis, that axis resolves to halfExtent.
func ClampToViewport(desired, halfExtent, levelSize mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		common.ClampLowerWins(desired.X(), halfExtent.X(), levelSize.X()-halfExtent.X()),
		common.ClampLowerWins(desired.Y(), halfExtent.Y(), levelSize.Y()-halfExtent.Y()),
	}
}
