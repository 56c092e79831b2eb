package scenario

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Tick is the input a target source sees each simulation step.
type Tick struct {
	Index  int
	DT     float32
	Intent IntentSpec
}

// Time returns the elapsed seconds at the start of the tick.
func (t Tick) Time() float32 {
	return float32(t.Index) * t.DT
}

// Target produces the tracked entity's position. ok is false while the
// entity does not exist.
type Target interface {
	Sample(t Tick) (pos mgl32.Vec3, ok bool, err error)
}

// NewTarget builds the target source described by spec.
func NewTarget(spec *Spec) (Target, error) {
	var (
		t   Target
		err error
	)
	switch spec.Target.Kind {
	case KindNone:
		t = noneTarget{}
	case KindPath:
		t, err = newPathTarget(spec.Target.Waypoints, spec.Target.Speed)
	case KindScript:
		t, err = NewScriptTarget(spec.Target.Script)
	case KindBody:
		t = NewBodyTarget(spec.Target.Body, spec.Level)
	case KindTraveler:
		t = NewTravelerTarget(spec.Target.Grid, spec.Target.Start.Vec3(), rand.New(rand.NewPCG(spec.Seed, spec.Seed^0x9e3779b97f4a7c15)))
	case KindShip:
		t = NewShipTarget(spec.Target.Start.Vec3())
	default:
		return nil, fmt.Errorf("scenario: %w %q", ErrUnknownTarget, spec.Target.Kind)
	}
	if err != nil {
		return nil, err
	}
	if len(spec.Target.Absent) > 0 {
		t = &absentTarget{inner: t, absent: spec.Target.Absent}
	}
	return t, nil
}

type noneTarget struct{}

func (noneTarget) Sample(Tick) (mgl32.Vec3, bool, error) {
	return mgl32.Vec3{}, false, nil
}

// absentTarget hides the inner target during the configured windows. The
// inner source keeps advancing so it resumes where it would have been.
type absentTarget struct {
	inner  Target
	absent []TickRange
}

func (a *absentTarget) Sample(t Tick) (mgl32.Vec3, bool, error) {
	pos, ok, err := a.inner.Sample(t)
	if err != nil || !ok {
		return pos, ok, err
	}
	for _, r := range a.absent {
		if r.Contains(t.Index) {
			return mgl32.Vec3{}, false, nil
		}
	}
	return pos, true, nil
}

// pathTarget loops along a closed polyline at constant speed.
type pathTarget struct {
	points   []mgl32.Vec3
	cumul    []float32
	total    float32
	speed    float32
	traveled float32
}

func newPathTarget(waypoints []Vec3Spec, speed float32) (*pathTarget, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("scenario: %w", ErrNoWaypoints)
	}
	if !validPathSpeed(speed) {
		return nil, fmt.Errorf("scenario: %w, got %v", ErrPathSpeed, speed)
	}
	p := &pathTarget{speed: speed}
	for _, w := range waypoints {
		p.points = append(p.points, w.Vec3())
	}
	p.cumul = make([]float32, len(p.points))
	for i := range p.points {
		next := p.points[(i+1)%len(p.points)]
		p.cumul[i] = p.total
		p.total += p.points[i].Sub(next).Len()
	}
	return p, nil
}

func (p *pathTarget) Sample(t Tick) (mgl32.Vec3, bool, error) {
	pos := p.at(p.traveled)
	if p.total > 0 {
		step := float64(p.speed) * float64(t.DT)
		p.traveled = float32(math.Mod(float64(p.traveled)+step, float64(p.total)))
	}
	return pos, true, nil
}

func (p *pathTarget) at(s float32) mgl32.Vec3 {
	if p.total == 0 {
		return p.points[0]
	}
	i := len(p.cumul) - 1
	for i > 0 && p.cumul[i] > s {
		i--
	}
	a := p.points[i]
	b := p.points[(i+1)%len(p.points)]
	seg := a.Sub(b).Len()
	if seg == 0 {
		return a
	}
	f := (s - p.cumul[i]) / seg
	return a.Add(b.Sub(a).Mul(f))
}
