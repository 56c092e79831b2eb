package sim

import (
	"github.com/milk9111/hexfollow/camera"
	"github.com/milk9111/hexfollow/scenario"
)

// TargetSystem samples the tracked entity.
type TargetSystem struct {
	Target scenario.Target
}

func (s *TargetSystem) Update(f *Frame) {
	pos, ok, err := s.Target.Sample(scenario.Tick{Index: f.Tick, DT: f.DT, Intent: f.Intent})
	if err != nil {
		f.Err = err
		return
	}
	f.Target = pos
	f.Present = ok
}

// CameraSystem moves the camera, either following the target or driven by
// the free rig.
type CameraSystem struct {
	Camera *camera.Camera
	Rig    *camera.FreeRig
	Free   bool
}

func (s *CameraSystem) Update(f *Frame) {
	if s.Free && s.Rig != nil {
		pos, rot := s.Rig.Update(f.Intent.Free(), f.DT)
		s.Camera.SetTransform(pos, rot)
		f.Velocity = s.Rig.Velocity()
		f.Mode = scenario.ModeFree
	} else {
		s.Camera.Update(f.Target, f.Present, f.DT)
		f.Velocity = s.Camera.Velocity()
		f.Mode = s.Camera.Mode().String()
	}
	f.Camera = s.Camera.Position()
	f.Rotation = s.Camera.Rotation()
}

// RecordSystem appends every Every-th frame to the trace.
type RecordSystem struct {
	Trace *Trace
	Every int
}

func (s *RecordSystem) Update(f *Frame) {
	if s.Every > 1 && f.Tick%s.Every != 0 {
		return
	}
	s.Trace.Frames = append(s.Trace.Frames, *f)
}
