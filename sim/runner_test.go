package sim

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/scenario"
	"gopkg.in/yaml.v3"
)

func loadRunner(t *testing.T, name string) *Runner {
	t.Helper()
	spec, err := scenario.Load(name)
	if err != nil {
		t.Fatalf("load %s failed: %v", name, err)
	}
	r, err := NewRunner(spec)
	if err != nil {
		t.Fatalf("runner for %s failed: %v", name, err)
	}
	return r
}

func TestRunnerIdleTicksHoldCamera(t *testing.T) {
	r := loadRunner(t, "corridor")
	trace, err := r.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(trace.Frames) != r.Spec.Ticks {
		t.Fatalf("expected %d frames, got %d", r.Spec.Ticks, len(trace.Frames))
	}

	before := trace.Frames[299]
	for _, f := range trace.Frames[300:360] {
		if f.Present || f.Mode != "idle" {
			t.Fatalf("tick %d: expected idle, got present=%v mode=%s", f.Tick, f.Present, f.Mode)
		}
		if f.Camera != before.Camera || f.Velocity != before.Velocity {
			t.Fatalf("tick %d: camera moved while idle: %v -> %v", f.Tick, before.Camera, f.Camera)
		}
	}
	if f := trace.Frames[360]; f.Mode != "tracking" || f.Camera == before.Camera {
		t.Fatalf("tracking should resume at tick 360, got %+v", f)
	}
	if stats := trace.Stats(); stats.IdleTicks != 60 {
		t.Fatalf("expected 60 idle ticks, got %d", stats.IdleTicks)
	}
}

func TestRunnerKeepsCameraZ(t *testing.T) {
	trace, err := loadRunner(t, "corridor").Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, f := range trace.Frames {
		if f.Camera.Z() != 10 {
			t.Fatalf("tick %d: camera z changed to %v", f.Tick, f.Camera.Z())
		}
	}
}

func TestRunnerDeterministic(t *testing.T) {
	for _, name := range []string{"corridor", "orbit", "bounce", "hexmap", "ship", "flythrough"} {
		t.Run(name, func(t *testing.T) {
			a, err := loadRunner(t, name).Run()
			if err != nil {
				t.Fatalf("first run failed: %v", err)
			}
			b, err := loadRunner(t, name).Run()
			if err != nil {
				t.Fatalf("second run failed: %v", err)
			}
			if a.RunID == b.RunID {
				t.Fatalf("runs should get distinct ids")
			}
			if len(a.Frames) != len(b.Frames) {
				t.Fatalf("frame counts differ: %d vs %d", len(a.Frames), len(b.Frames))
			}
			for i := range a.Frames {
				if a.Frames[i].Camera != b.Frames[i].Camera || a.Frames[i].Velocity != b.Frames[i].Velocity {
					t.Fatalf("tick %d differs: %v vs %v", i, a.Frames[i].Camera, b.Frames[i].Camera)
				}
			}
		})
	}
}

func TestRunnerDegenerateLevelPinsCamera(t *testing.T) {
	trace, err := loadRunner(t, "tiny").Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := mgl32.Vec3{100, 100, 0}
	for _, f := range trace.Frames {
		if f.Camera != want {
			t.Fatalf("tick %d: expected %v, got %v", f.Tick, want, f.Camera)
		}
	}
}

func TestRunnerFreeMode(t *testing.T) {
	r := loadRunner(t, "flythrough")
	start := r.Camera().Position()
	var f Frame
	var err error
	for i := 0; i < 150; i++ {
		if f, err = r.Step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
	if f.Mode != scenario.ModeFree {
		t.Fatalf("expected free mode, got %s", f.Mode)
	}
	if f.Camera.Z() >= start.Z() {
		t.Fatalf("camera should fly forward along -Z, got %v from %v", f.Camera, start)
	}
	if mgl32.Abs(f.Camera.X()-start.X()) > 1e-4 || mgl32.Abs(f.Camera.Y()-start.Y()) > 1e-4 {
		t.Fatalf("camera drifted sideways: %v from %v", f.Camera, start)
	}
}

func TestRunnerSetFreeHandover(t *testing.T) {
	r := loadRunner(t, "corridor")
	for i := 0; i < 20; i++ {
		if _, err := r.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	r.SetFree(true)
	if !r.Free() {
		t.Fatalf("expected free mode")
	}
	pos := r.Camera().Position()
	r.SetIntent(&scenario.IntentSpec{})
	f, err := r.Step()
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if f.Camera != pos {
		t.Fatalf("free handover should not move the camera: %v -> %v", pos, f.Camera)
	}

	r.SetIntent(nil)
	r.SetFree(false)
	if r.Free() || r.Camera().Velocity() != (mgl32.Vec3{}) {
		t.Fatalf("follow handover should drop velocity")
	}
}

func TestRunnerIntentOverride(t *testing.T) {
	r := loadRunner(t, "ship")
	r.SetIntent(&scenario.IntentSpec{})
	for i := 0; i < 60; i++ {
		f, err := r.Step()
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if f.Target != (mgl32.Vec3{2000, 2000, 0}) {
			t.Fatalf("ship moved without thrust: %v", f.Target)
		}
	}
}

func TestRunnerResetAndRecordEvery(t *testing.T) {
	r := loadRunner(t, "corridor")
	r.SetRecordEvery(10)
	trace, err := r.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(trace.Frames) != 90 {
		t.Fatalf("expected 90 recorded frames, got %d", len(trace.Frames))
	}
	if !r.Done() {
		t.Fatalf("runner should be done")
	}

	if err := r.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if r.Tick() != 0 || len(r.Trace().Frames) != 0 {
		t.Fatalf("reset should rewind, tick=%d frames=%d", r.Tick(), len(r.Trace().Frames))
	}
	if r.Camera().Position() != (mgl32.Vec3{160, 90, 10}) {
		t.Fatalf("reset should snap to the start, got %v", r.Camera().Position())
	}
}

type failingTarget struct {
	after int
	err   error
}

func (f failingTarget) Sample(t scenario.Tick) (mgl32.Vec3, bool, error) {
	if t.Index >= f.after {
		return mgl32.Vec3{}, false, f.err
	}
	return mgl32.Vec3{500, 200, 0}, true, nil
}

func TestRunnerStepErrorSkipsLaterSystems(t *testing.T) {
	boom := errors.New("boom")
	r := loadRunner(t, "corridor")
	r.scheduler = NewScheduler(&TargetSystem{Target: failingTarget{after: 3, err: boom}}, r.cameraSys, r.recordSys)

	for i := 0; i < 3; i++ {
		if _, err := r.Step(); err != nil {
			t.Fatalf("tick %d: unexpected error %v", i, err)
		}
	}
	before := r.Camera().Position()
	if _, err := r.Step(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got := r.Camera().Position(); got != before {
		t.Fatalf("camera moved on a failed tick: %v -> %v", before, got)
	}
	if n := len(r.Trace().Frames); n != 3 {
		t.Fatalf("failed tick should not be recorded, got %d frames", n)
	}
	if r.Tick() != 3 {
		t.Fatalf("failed tick should not advance, at %d", r.Tick())
	}
}

func TestNewRunnerMissingScript(t *testing.T) {
	spec, err := scenario.Parse([]byte("target: {kind: script, script: nowhere.tengo}"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := NewRunner(spec); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestTraceYAML(t *testing.T) {
	r := loadRunner(t, "tiny")
	r.SetRecordEvery(100)
	trace, err := r.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out, err := yaml.Marshal(trace)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	text := string(out)
	for _, want := range []string{"run_id: " + trace.RunID.String(), "scenario: tiny", "camera:", "mode: tracking"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in\n%s", want, text)
		}
	}
}
