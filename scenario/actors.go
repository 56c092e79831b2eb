package scenario

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/hex"
	"github.com/milk9111/hexfollow/travel"
)

// GroundToLevel maps a ground-plane (XZ, rows toward -Z) position onto the
// level plane the camera follows in (XY).
func GroundToLevel(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{p.X(), -p.Z(), 0}
}

// TravelerTarget wanders across a hex grid.
type TravelerTarget struct {
	Grid     *hex.Grid
	traveler *travel.Traveler
	pos      mgl32.Vec3
}

func NewTravelerTarget(grid GridSpec, start mgl32.Vec3, rng *rand.Rand) *TravelerTarget {
	return &TravelerTarget{
		Grid:     hex.NewGrid(grid.Width, grid.Height),
		traveler: travel.NewTraveler(rng),
		pos:      start,
	}
}

func (t *TravelerTarget) Sample(tick Tick) (mgl32.Vec3, bool, error) {
	t.pos = t.traveler.Update(t.pos, t.Grid.Cells(), tick.DT)
	return GroundToLevel(t.pos), true, nil
}

// ShipTarget is a ship steered by the tick intent.
type ShipTarget struct {
	Ship *travel.Ship
}

func NewShipTarget(start mgl32.Vec3) *ShipTarget {
	return &ShipTarget{Ship: travel.NewShip(start)}
}

func (s *ShipTarget) Sample(tick Tick) (mgl32.Vec3, bool, error) {
	return s.Ship.Update(tick.Intent.Ship(), tick.DT), true, nil
}
