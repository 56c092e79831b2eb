// Package travel moves map actors: travelers wandering between hex cells and
// keyboard-steered ships.
package travel

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/hex"
)

const (
	// DefaultTravelSpeed is the fraction of the remaining distance covered per second.
	DefaultTravelSpeed float32 = 2
	// DefaultArriveEpsilon is how close counts as arrived.
	DefaultArriveEpsilon float32 = 0.5
)

// Traveler walks toward a random cell, picking a new one on arrival.
type Traveler struct {
	Speed         float32
	ArriveEpsilon float32

	rng         *rand.Rand
	destination mgl32.Vec3
	hasDest     bool
}

// NewTraveler creates a traveler drawing destinations from rng.
func NewTraveler(rng *rand.Rand) *Traveler {
	return &Traveler{
		Speed:         DefaultTravelSpeed,
		ArriveEpsilon: DefaultArriveEpsilon,
		rng:           rng,
	}
}

// Destination returns the current destination, if one was picked.
func (t *Traveler) Destination() (mgl32.Vec3, bool) {
	return t.destination, t.hasDest
}

// Update returns the traveler's next position on the ground plane. With no
// cells the destination is the origin.
func (t *Traveler) Update(pos mgl32.Vec3, cells []hex.Cell, dt float32) mgl32.Vec3 {
	if !t.hasDest || pos.Sub(t.destination).Len() <= t.ArriveEpsilon {
		t.destination = t.pick(cells)
		t.hasDest = true
	}
	move := t.destination.Sub(pos)
	return pos.Add(move.Mul(dt * t.Speed))
}

func (t *Traveler) pick(cells []hex.Cell) mgl32.Vec3 {
	if len(cells) == 0 {
		return mgl32.Vec3{}
	}
	return cells[t.rng.IntN(len(cells))].Position
}
