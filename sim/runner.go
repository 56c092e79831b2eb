package sim

import (
	"fmt"

	"github.com/milk9111/hexfollow/camera"
	"github.com/milk9111/hexfollow/scenario"
)

// Runner drives one scenario tick by tick.
type Runner struct {
	Spec *scenario.Spec

	camera    *camera.Camera
	rig       *camera.FreeRig
	target    scenario.Target
	cameraSys *CameraSystem
	recordSys *RecordSystem
	scheduler *Scheduler
	trace     *Trace

	tick     int
	every    int
	override *scenario.IntentSpec
}

// NewRunner builds the target, camera and systems for spec.
func NewRunner(spec *scenario.Spec) (*Runner, error) {
	r := &Runner{Spec: spec, every: 1}
	if err := r.Reset(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset rewinds to tick 0 with a fresh target and camera. The recording
// interval and any intent override are kept.
func (r *Runner) Reset() error {
	target, err := scenario.NewTarget(r.Spec)
	if err != nil {
		return fmt.Errorf("sim: build target for %s: %w", r.Spec.Name, err)
	}

	cs := r.Spec.Camera
	cam := camera.NewCamera(cs.HalfExtent.X, cs.HalfExtent.Y, cs.Scale)
	cam.SetLevelSize(r.Spec.Level.Width, r.Spec.Level.Height)
	cam.SetFollow(cs.Follow())
	cam.SnapTo(r.Spec.CameraStart())

	r.camera = cam
	r.rig = camera.NewFreeRig(cam.Position(), cs.Follow())
	r.target = target
	r.cameraSys = &CameraSystem{Camera: cam, Rig: r.rig, Free: cs.Mode == scenario.ModeFree}
	r.trace = NewTrace(r.Spec.Name, r.Spec.DT)
	r.recordSys = &RecordSystem{Trace: r.trace, Every: r.every}
	r.scheduler = NewScheduler()
	r.scheduler.Add(&TargetSystem{Target: target})
	r.scheduler.Add(r.cameraSys)
	r.scheduler.Add(r.recordSys)
	r.tick = 0
	return nil
}

// SetRecordEvery records only every k-th tick.
func (r *Runner) SetRecordEvery(k int) {
	r.every = max(1, k)
	r.recordSys.Every = r.every
}

// SetIntent overrides the scripted intents with live input. nil restores
// the scripted ones.
func (r *Runner) SetIntent(in *scenario.IntentSpec) {
	r.override = in
}

// SetFree switches between following the target and the free rig. The
// handover keeps the camera where it is and drops carried velocity.
func (r *Runner) SetFree(free bool) {
	if free == r.cameraSys.Free {
		return
	}
	if free {
		r.rig.Reset(r.camera.Position())
	} else {
		r.camera.Follow().Reset()
	}
	r.cameraSys.Free = free
}

func (r *Runner) Free() bool {
	return r.cameraSys.Free
}

func (r *Runner) Camera() *camera.Camera {
	return r.camera
}

// Rig returns the free-camera rig.
func (r *Runner) Rig() *camera.FreeRig {
	return r.rig
}

func (r *Runner) Target() scenario.Target {
	return r.target
}

func (r *Runner) Trace() *Trace {
	return r.trace
}

// Tick is the index of the next tick to run.
func (r *Runner) Tick() int {
	return r.tick
}

func (r *Runner) Done() bool {
	return r.tick >= r.Spec.Ticks
}

// Step runs one tick and returns its frame.
func (r *Runner) Step() (Frame, error) {
	f := Frame{
		Tick: r.tick,
		DT:   r.Spec.DT,
		Time: float32(r.tick) * r.Spec.DT,
	}
	if r.override != nil {
		f.Intent = *r.override
	} else {
		f.Intent = r.Spec.IntentAt(r.tick)
	}

	if err := r.scheduler.Update(&f); err != nil {
		return f, fmt.Errorf("sim: tick %d: %w", r.tick, err)
	}
	r.tick++
	return f, nil
}

// Run steps until the scenario's tick count and returns the trace.
func (r *Runner) Run() (*Trace, error) {
	for !r.Done() {
		if _, err := r.Step(); err != nil {
			return r.trace, err
		}
	}
	return r.trace, nil
}
