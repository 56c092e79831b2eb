// Package hex lays out a pointy-top hexagon grid on the XZ ground plane and
// produces static mesh data for it.
//
// Layout follows Jasper Flick's hex map tutorial
// (https://catlikecoding.com/unity/tutorials/hex-map). Rows advance toward -Z.
package hex

import "github.com/go-gl/mathgl/mgl32"

const (
	// OuterRadius is the centre-to-corner distance.
	OuterRadius float32 = 10
	// InnerRadius is the centre-to-edge distance, √3/2 of OuterRadius.
	InnerRadius float32 = OuterRadius * 0.8660254
	// InnerDiameter is the distance between neighbouring centres in a row.
	InnerDiameter float32 = InnerRadius * 2
	// RowSpacing is the distance between neighbouring rows.
	RowSpacing float32 = OuterRadius * 1.5
	// RowOffset shifts every odd row by half a cell.
	RowOffset float32 = 0.5
)

var corners = [6]mgl32.Vec3{
	{0, 0, OuterRadius},
	{InnerRadius, 0, 0.5 * OuterRadius},
	{InnerRadius, 0, -0.5 * OuterRadius},
	{0, 0, -OuterRadius},
	{-InnerRadius, 0, -0.5 * OuterRadius},
	{-InnerRadius, 0, 0.5 * OuterRadius},
}

// Corners returns the six corners relative to a cell centre, clockwise seen
// from above, starting at the top point.
func Corners() [6]mgl32.Vec3 {
	return corners
}

// Coord addresses a cell by column and row.
type Coord struct {
	Col, Row int
}

// Center returns the world position of the cell centre at c.
func (c Coord) Center() mgl32.Vec3 {
	col, row := float32(c.Col), float32(c.Row)
	return mgl32.Vec3{(col + float32(c.Row%2)*RowOffset) * InnerDiameter, 0, -row * RowSpacing}
}
