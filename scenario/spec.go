package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/camera"
	"github.com/milk9111/hexfollow/common"
	"github.com/milk9111/hexfollow/travel"
	"gopkg.in/yaml.v3"
)

const (
	ModeFollow = "follow"
	ModeFree   = "free"

	KindNone     = "none"
	KindPath     = "path"
	KindScript   = "script"
	KindBody     = "body"
	KindTraveler = "traveler"
	KindShip     = "ship"

	defaultTicks = 600
)

var (
	ErrUnknownTarget = errors.New("unknown target kind")
	ErrUnknownMode   = errors.New("unknown camera mode")
	ErrNoScript      = errors.New("script target without script")
	ErrNoWaypoints   = errors.New("path target without waypoints")
	ErrPathSpeed     = errors.New("path speed must be finite and non-negative")
)

type Vec2Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (v Vec2Spec) Vec2() mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

type Vec3Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

type LevelSpec struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type CameraSpec struct {
	Mode       string   `yaml:"mode"`
	HalfExtent Vec2Spec `yaml:"half_extent"`
	Scale      float32  `yaml:"scale"`
	Smoothness float32  `yaml:"smoothness"`
	// MaxSpeed is uncapped when omitted; YAML accepts .inf.
	MaxSpeed *float32  `yaml:"max_speed"`
	Position *Vec3Spec `yaml:"position"`
}

// Follow returns the follow parameters for the camera.
func (c CameraSpec) Follow() camera.FollowParameters {
	p := camera.FollowParameters{Smoothness: c.Smoothness, MaxSpeed: common.Inf()}
	if c.MaxSpeed != nil {
		p.MaxSpeed = *c.MaxSpeed
	}
	return p
}

type BodySpec struct {
	Position   Vec3Spec `yaml:"position"`
	Velocity   Vec3Spec `yaml:"velocity"`
	Radius     float32  `yaml:"radius"`
	Gravity    float32  `yaml:"gravity"`
	Elasticity float32  `yaml:"elasticity"`
}

type GridSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickRange covers ticks From (inclusive) to To (exclusive).
type TickRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

func (r TickRange) Contains(tick int) bool {
	return tick >= r.From && tick < r.To
}

type TargetSpec struct {
	Kind      string      `yaml:"kind"`
	Waypoints []Vec3Spec  `yaml:"waypoints"`
	Speed     float32     `yaml:"speed"`
	Script    string      `yaml:"script"`
	Body      BodySpec    `yaml:"body"`
	Grid      GridSpec    `yaml:"grid"`
	Start     Vec3Spec    `yaml:"start"`
	Absent    []TickRange `yaml:"absent"`
}

type IntentSpec struct {
	TickRange `yaml:",inline"`

	Move   Vec3Spec `yaml:"move"`
	Yaw    float32  `yaml:"yaw"`
	Pitch  float32  `yaml:"pitch"`
	Thrust bool     `yaml:"thrust"`
	Turn   float32  `yaml:"turn"`
}

// Free returns the free-camera part of the intent.
func (i IntentSpec) Free() camera.FreeIntent {
	return camera.FreeIntent{
		Move:       i.Move.Vec3(),
		YawDelta:   i.Yaw,
		PitchDelta: i.Pitch,
		Rotate:     i.Yaw != 0 || i.Pitch != 0,
	}
}

// Ship returns the ship part of the intent.
func (i IntentSpec) Ship() travel.ShipIntent {
	return travel.ShipIntent{Thrust: i.Thrust, Turn: i.Turn}
}

// Spec describes one simulation run.
type Spec struct {
	Name    string       `yaml:"name"`
	DT      float32      `yaml:"dt"`
	Ticks   int          `yaml:"ticks"`
	Seed    uint64       `yaml:"seed"`
	Level   LevelSpec    `yaml:"level"`
	Camera  CameraSpec   `yaml:"camera"`
	Target  TargetSpec   `yaml:"target"`
	Intents []IntentSpec `yaml:"intents"`
}

// IntentAt returns the first intent covering tick, or the zero intent.
func (s *Spec) IntentAt(tick int) IntentSpec {
	for _, in := range s.Intents {
		if in.Contains(tick) {
			return in
		}
	}
	return IntentSpec{}
}

// CameraStart returns the initial camera position: the configured one, or
// the level centre.
func (s *Spec) CameraStart() mgl32.Vec3 {
	if s.Camera.Position != nil {
		return s.Camera.Position.Vec3()
	}
	return mgl32.Vec3{s.Level.Width / 2, s.Level.Height / 2, 0}
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scenario: unmarshal: %w", err)
	}
	if err := spec.normalize(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *Spec) normalize() error {
	if s.DT == 0 {
		s.DT = travel.DefaultTimeStep
	}
	if s.DT < 0 || isNaN(s.DT) {
		return fmt.Errorf("scenario: dt must be non-negative, got %v", s.DT)
	}
	if s.Ticks == 0 {
		s.Ticks = defaultTicks
	}
	if s.Ticks < 0 {
		return fmt.Errorf("scenario: ticks must be non-negative, got %d", s.Ticks)
	}
	if s.Level.Width < 0 || s.Level.Height < 0 {
		return fmt.Errorf("scenario: level size must be non-negative, got %vx%v", s.Level.Width, s.Level.Height)
	}

	if s.Camera.Mode == "" {
		s.Camera.Mode = ModeFollow
	}
	if s.Camera.Mode != ModeFollow && s.Camera.Mode != ModeFree {
		return fmt.Errorf("scenario: %w %q", ErrUnknownMode, s.Camera.Mode)
	}
	if s.Camera.Scale == 0 {
		s.Camera.Scale = 1
	}
	if s.Camera.Smoothness == 0 {
		s.Camera.Smoothness = camera.DefaultFollowParameters().Smoothness
	}
	if s.Camera.MaxSpeed != nil && *s.Camera.MaxSpeed < 0 {
		return fmt.Errorf("scenario: max_speed must be non-negative, got %v", *s.Camera.MaxSpeed)
	}

	switch s.Target.Kind {
	case "":
		s.Target.Kind = KindNone
	case KindNone, KindBody, KindTraveler, KindShip:
	case KindPath:
		if len(s.Target.Waypoints) == 0 {
			return fmt.Errorf("scenario: %w", ErrNoWaypoints)
		}
		if !validPathSpeed(s.Target.Speed) {
			return fmt.Errorf("scenario: %w, got %v", ErrPathSpeed, s.Target.Speed)
		}
	case KindScript:
		if s.Target.Script == "" {
			return fmt.Errorf("scenario: %w", ErrNoScript)
		}
	default:
		return fmt.Errorf("scenario: %w %q", ErrUnknownTarget, s.Target.Kind)
	}
	return nil
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}

func validPathSpeed(v float32) bool {
	return v >= 0 && !math.IsInf(float64(v), 1)
}
