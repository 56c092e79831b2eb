package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/common"
)

const (
	defaultSensitivity    float32 = -0.3
	defaultMoveSpeed      float32 = 10
	defaultTranslateScale float32 = 10
)

// FreeIntent is one tick of resolved free-camera input.
type FreeIntent struct {
	// Move is a local-space direction: +X right, +Z backward. Its length is
	// clamped to 1.
	Move mgl32.Vec3
	// YawDelta and PitchDelta are raw pointer deltas, applied only when
	// Rotate is set.
	YawDelta   float32
	PitchDelta float32
	Rotate     bool
}

// FreeRig is a fly camera: a yaw/pitch driver and a position goal that the
// actual position chases with the damped approach. It never clamps to level
// bounds.
type FreeRig struct {
	Yaw   float32 // degrees, kept in (-720, 720)
	Pitch float32 // degrees, clamped to [-90, 90]

	Sensitivity    float32
	MoveSpeed      float32
	TranslateScale float32

	goal   mgl32.Vec3
	pos    mgl32.Vec3
	follow FollowPolicy
}

// NewFreeRig creates a rig resting at pos.
func NewFreeRig(pos mgl32.Vec3, params FollowParameters) *FreeRig {
	return &FreeRig{
		Sensitivity:    defaultSensitivity,
		MoveSpeed:      defaultMoveSpeed,
		TranslateScale: defaultTranslateScale,
		goal:           pos,
		pos:            pos,
		follow:         FollowPolicy{Params: params},
	}
}

// RotateYawPitch adds yaw and pitch in degrees.
func (r *FreeRig) RotateYawPitch(yawDeg, pitchDeg float32) {
	r.Yaw = float32(math.Mod(float64(r.Yaw+yawDeg), 720))
	r.Pitch = mgl32.Clamp(r.Pitch+pitchDeg, -90, 90)
}

// Translate moves the position goal.
func (r *FreeRig) Translate(delta mgl32.Vec3) {
	r.goal = r.goal.Add(delta)
}

// Rotation returns the orientation from the current yaw and pitch.
func (r *FreeRig) Rotation() mgl32.Quat {
	return common.QuatFromYawPitch(r.Yaw, r.Pitch)
}

// Goal returns the position goal.
func (r *FreeRig) Goal() mgl32.Vec3 {
	return r.goal
}

// Position returns the smoothed position.
func (r *FreeRig) Position() mgl32.Vec3 {
	return r.pos
}

// Velocity returns the carried smoothing velocity.
func (r *FreeRig) Velocity() mgl32.Vec3 {
	return r.follow.State.Velocity
}

// Reset places the rig at pos with no carried velocity.
func (r *FreeRig) Reset(pos mgl32.Vec3) {
	r.goal = pos
	r.pos = pos
	r.follow.Reset()
}

// Update applies one tick of input and returns the final transform. The move
// direction uses the orientation from before this tick's rotation.
func (r *FreeRig) Update(in FreeIntent, dt float32) (mgl32.Vec3, mgl32.Quat) {
	move := r.Rotation().Rotate(common.ClampLen(in.Move, 1)).Mul(r.MoveSpeed)

	if in.Rotate {
		r.RotateYawPitch(r.Sensitivity*in.YawDelta, r.Sensitivity*in.PitchDelta)
	}

	r.Translate(move.Mul(dt * r.TranslateScale))
	r.pos = r.follow.StepToward(r.pos, r.goal, dt)
	return r.pos, r.Rotation()
}
