package travel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultTimeStep is the fixed step ships were tuned for.
	DefaultTimeStep float32 = 1.0 / 60.0
	// DefaultShipSpeed is in world units per second.
	DefaultShipSpeed float32 = 500
	// DefaultTurnRate is in full turns per second while thrusting.
	DefaultTurnRate float32 = 0.5
)

// ShipIntent is one tick of resolved ship input.
type ShipIntent struct {
	Thrust bool
	// Turn is +1 for left, -1 for right. Ships only turn while thrusting.
	Turn float32
}

// Ship moves in the XY plane. Its nose points along -Y rotated by Heading.
type Ship struct {
	Position mgl32.Vec3
	// Heading is the rotation about +Z in radians.
	Heading float32

	Speed    float32
	TurnRate float32
}

// NewShip creates a ship at pos facing down the screen.
func NewShip(pos mgl32.Vec3) *Ship {
	return &Ship{Position: pos, Speed: DefaultShipSpeed, TurnRate: DefaultTurnRate}
}

// Rotation returns the ship orientation.
func (s *Ship) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(s.Heading, mgl32.Vec3{0, 0, 1})
}

// Update applies one tick of input.
func (s *Ship) Update(in ShipIntent, dt float32) mgl32.Vec3 {
	if !in.Thrust {
		return s.Position
	}
	turn := mgl32.Clamp(in.Turn, -1, 1) * s.TurnRate
	s.Heading = float32(math.Mod(float64(s.Heading+turn*2*math.Pi*dt), 2*math.Pi))

	dir := s.Rotation().Rotate(mgl32.Vec3{0, 1, 0})
	s.Position = s.Position.Add(dir.Mul(-s.Speed * dt))
	return s.Position
}
