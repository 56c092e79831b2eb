package scenario

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

const (
	defaultBodyRadius = 8
	wallThickness     = 1
)

// BodyTarget is a ball bouncing inside the level walls under gravity.
type BodyTarget struct {
	space *cp.Space
	body  *cp.Body
}

// NewBodyTarget creates the Chipmunk space for spec. Walls are only added
// for a level with a size.
func NewBodyTarget(spec BodySpec, level LevelSpec) *BodyTarget {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: float64(spec.Gravity)})

	if level.Width > 0 && level.Height > 0 {
		w, h := float64(level.Width), float64(level.Height)
		segments := []struct {
			a cp.Vector
			b cp.Vector
		}{
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
			{a: cp.Vector{X: 0, Y: h}, b: cp.Vector{X: w, Y: h}},
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
			{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
		}
		for _, seg := range segments {
			shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, wallThickness)
			shape.SetElasticity(1)
			shape.SetFriction(0)
			space.AddShape(shape)
		}
	}

	radius := float64(spec.Radius)
	if radius <= 0 {
		radius = defaultBodyRadius
	}
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: float64(spec.Position.X), Y: float64(spec.Position.Y)})
	body.SetVelocityVector(cp.Vector{X: float64(spec.Velocity.X), Y: float64(spec.Velocity.Y)})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(float64(spec.Elasticity))
	shape.SetFriction(0)
	space.AddBody(body)
	space.AddShape(shape)

	return &BodyTarget{space: space, body: body}
}

func (b *BodyTarget) Sample(t Tick) (mgl32.Vec3, bool, error) {
	if t.DT > 0 {
		b.space.Step(float64(t.DT))
	}
	p := b.body.Position()
	return mgl32.Vec3{float32(p.X), float32(p.Y), 0}, true, nil
}
