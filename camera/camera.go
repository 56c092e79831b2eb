package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is an orthographic camera that follows a target inside the current
// level. Its projection spans [-right, right] x [-top, top] view units, scaled
// by Scale into world units.
type Camera struct {
	pos mgl32.Vec3
	rot mgl32.Quat

	right float32
	top   float32
	scale float32

	// level size in world units (0 means unbounded)
	levelW float32
	levelH float32

	follow FollowPolicy
}

// NewCamera creates a camera with the given projection half size and scale.
func NewCamera(right, top, scale float32) *Camera {
	c := &Camera{
		rot:    mgl32.QuatIdent(),
		scale:  1,
		follow: FollowPolicy{Params: DefaultFollowParameters()},
	}
	c.SetProjection(right, top)
	c.SetScale(scale)
	return c
}

// SetScale updates the projection scale. Non-positive values are ignored.
func (c *Camera) SetScale(s float32) {
	if s <= 0 {
		return
	}
	c.scale = s
}

// Scale returns the projection scale.
func (c *Camera) Scale() float32 {
	return c.scale
}

// SetProjection updates the projection half size.
func (c *Camera) SetProjection(right, top float32) {
	if right < 0 || top < 0 {
		return
	}
	c.right = right
	c.top = top
}

// SetLevelSize sets the level dimensions used to clamp the camera. A zero
// size disables clamping.
func (c *Camera) SetLevelSize(w, h float32) {
	c.levelW = max(0, w)
	c.levelH = max(0, h)
}

// LevelSize returns the level dimensions.
func (c *Camera) LevelSize() mgl32.Vec2 {
	return mgl32.Vec2{c.levelW, c.levelH}
}

// SetFollow replaces the follow parameters, keeping the carried velocity.
func (c *Camera) SetFollow(params FollowParameters) {
	c.follow.Params = params
}

// Follow returns the camera's follow policy.
func (c *Camera) Follow() *FollowPolicy {
	return &c.follow
}

// HalfExtent returns half the visible world-space size.
func (c *Camera) HalfExtent() mgl32.Vec2 {
	return HalfExtent(c.right, c.top, c.scale)
}

// Bounds returns the clamp rectangle for the camera centre. ok is false when
// no level size is set.
func (c *Camera) Bounds() (ViewportBounds, bool) {
	if c.levelW <= 0 || c.levelH <= 0 {
		return ViewportBounds{}, false
	}
	return NewViewportBounds(c.HalfExtent(), c.LevelSize()), true
}

// ViewBottomLeft returns the world-space bottom-left corner of the view.
func (c *Camera) ViewBottomLeft() mgl32.Vec2 {
	return c.pos.Vec2().Sub(c.HalfExtent())
}

// Update moves the camera toward target. ok=false means no tracked target
// exists this tick and the camera stays where it is.
func (c *Camera) Update(target mgl32.Vec3, ok bool, dt float32) {
	var bounds *ViewportBounds
	if b, has := c.Bounds(); has {
		bounds = &b
	}
	c.pos = c.follow.Step(c.pos, target, ok, bounds, dt)
}

// SnapTo places the camera at p immediately, clamped to the level, and drops
// any carried velocity. Use it after a level load.
func (c *Camera) SnapTo(p mgl32.Vec3) {
	if _, ok := c.Bounds(); ok {
		xy := ClampToViewport(p.Vec2(), c.HalfExtent(), c.LevelSize())
		p = xy.Vec3(p.Z())
	}
	c.pos = p
	c.follow.Reset()
}

// SetTransform writes a transform computed elsewhere, typically a FreeRig.
func (c *Camera) SetTransform(pos mgl32.Vec3, rot mgl32.Quat) {
	c.pos = pos
	c.rot = rot
}

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.pos
}

// Rotation returns the camera rotation.
func (c *Camera) Rotation() mgl32.Quat {
	return c.rot
}

// Velocity returns the carried smoothing velocity.
func (c *Camera) Velocity() mgl32.Vec3 {
	return c.follow.State.Velocity
}

// Mode returns the follow state of the last tick.
func (c *Camera) Mode() Mode {
	return c.follow.State.Mode
}
