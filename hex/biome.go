package hex

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Biome classifies a cell for colouring.
type Biome int

const (
	Origin Biome = iota
	Water
	Forest
)

func (b Biome) String() string {
	switch b {
	case Origin:
		return "origin"
	case Water:
		return "water"
	case Forest:
		return "forest"
	default:
		return "unknown"
	}
}

// Color returns the display colour for the biome.
func (b Biome) Color() color.RGBA {
	switch b {
	case Origin:
		return colornames.Orangered
	case Water:
		return colornames.Blue
	default:
		return colornames.Darkgreen
	}
}

// BiomeAt marks the starting cell, then alternates water and forest rows.
func BiomeAt(c Coord) Biome {
	switch {
	case c.Col == 0 && c.Row == 0:
		return Origin
	case c.Row%2 == 0:
		return Water
	default:
		return Forest
	}
}
