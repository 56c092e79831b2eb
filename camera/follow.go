package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/common"
)

// Mode is the per-tick follow state.
type Mode int

const (
	Idle Mode = iota
	Tracking
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// FollowParameters configures the damped approach.
type FollowParameters struct {
	// Smoothness is the time constant in seconds. Values below MinSmoothness
	// are treated as MinSmoothness.
	Smoothness float32
	// MaxSpeed caps the approach speed in world units per second. +Inf means
	// unconstrained.
	MaxSpeed float32
}

// DefaultFollowParameters returns a 0.2s uncapped follow.
func DefaultFollowParameters() FollowParameters {
	return FollowParameters{Smoothness: 0.2, MaxSpeed: common.Inf()}
}

// SmoothingState is the velocity carried between ticks. Each camera owns one.
type SmoothingState struct {
	Velocity mgl32.Vec3
	Mode     Mode
}

// FollowPolicy clamps a tracked target to level bounds and smooths a camera
// position toward it once per tick. A FollowPolicy must not be stepped from
// more than one goroutine at a time.
type FollowPolicy struct {
	Params FollowParameters
	State  SmoothingState
}

// NewFollowPolicy creates a policy at rest.
func NewFollowPolicy(params FollowParameters) *FollowPolicy {
	return &FollowPolicy{Params: params}
}

// Step advances one tick. When ok is false the target is absent: current is
// returned unchanged and the carried velocity is left alone. bounds may be nil
// for an unbounded follow. The camera keeps its own Z.
func (p *FollowPolicy) Step(current, tracked mgl32.Vec3, ok bool, bounds *ViewportBounds, dt float32) mgl32.Vec3 {
	if !ok {
		p.State.Mode = Idle
		return current
	}

	xy := tracked.Vec2()
	if bounds != nil {
		xy = bounds.Clamp(xy)
	}
	to := xy.Vec3(current.Z())

	next, vel := SmoothDamp(current, to, p.State.Velocity, p.Params.Smoothness, p.Params.MaxSpeed, dt)
	p.State.Velocity = vel
	p.State.Mode = Tracking
	return next
}

// StepToward smooths current toward an explicit goal without clamping. Free
// camera rigs use it with input-driven goals.
func (p *FollowPolicy) StepToward(current, goal mgl32.Vec3, dt float32) mgl32.Vec3 {
	next, vel := SmoothDamp(current, goal, p.State.Velocity, p.Params.Smoothness, p.Params.MaxSpeed, dt)
	p.State.Velocity = vel
	p.State.Mode = Tracking
	return next
}

// Reset drops the carried velocity.
func (p *FollowPolicy) Reset() {
	p.State = SmoothingState{}
}
