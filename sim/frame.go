package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/milk9111/hexfollow/scenario"
)

// Frame is the state of one tick as it passes through the systems.
type Frame struct {
	Tick int     `yaml:"tick"`
	DT   float32 `yaml:"dt"`
	Time float32 `yaml:"time"`

	Target  mgl32.Vec3 `yaml:"target"`
	Present bool        `yaml:"present"`

	Camera   mgl32.Vec3 `yaml:"camera"`
	Rotation mgl32.Quat `yaml:"rotation"`
	Velocity mgl32.Vec3 `yaml:"velocity"`
	Mode     string      `yaml:"mode"`

	Intent scenario.IntentSpec `yaml:"-"`
	Err    error               `yaml:"-"`
}

// Trace is the recorded output of one run.
type Trace struct {
	RunID    uuid.UUID `yaml:"run_id"`
	Scenario string    `yaml:"scenario"`
	DT       float32   `yaml:"dt"`
	Frames   []Frame   `yaml:"frames"`
}

func NewTrace(name string, dt float32) *Trace {
	return &Trace{RunID: uuid.New(), Scenario: name, DT: dt}
}

// Stats summarises a trace.
type Stats struct {
	Frames    int
	IdleTicks int
	// MaxStep is the largest camera move between consecutive recorded frames.
	MaxStep float32
	Final   mgl32.Vec3
}

func (t *Trace) Stats() Stats {
	var s Stats
	s.Frames = len(t.Frames)
	for i, f := range t.Frames {
		if !f.Present {
			s.IdleTicks++
		}
		if i > 0 {
			s.MaxStep = max(s.MaxStep, f.Camera.Sub(t.Frames[i-1].Camera).Len())
		}
		s.Final = f.Camera
	}
	return s
}
