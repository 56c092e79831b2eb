package hex

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cell is one hexagon of a grid.
type Cell struct {
	Coord    Coord
	Position mgl32.Vec3
	Biome    Biome
}

// Mesh is triangle-list geometry.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Indices  []uint16
}

// fan lists the six triangles around the centre vertex, clockwise so the
// upward face is front facing.
var fan = [18]uint16{
	0, 1, 2,
	0, 2, 3,
	0, 3, 4,
	0, 4, 5,
	0, 5, 6,
	0, 6, 1,
}

// Mesh returns the cell's geometry in world space: the centre followed by the
// six corners.
func (c Cell) Mesh() Mesh {
	m := Mesh{
		Vertices: make([]mgl32.Vec3, 0, 7),
		Normals:  make([]mgl32.Vec3, 7),
		Indices:  append([]uint16(nil), fan[:]...),
	}
	m.Vertices = append(m.Vertices, c.Position)
	for _, corner := range corners {
		m.Vertices = append(m.Vertices, c.Position.Add(corner))
	}
	for i := range m.Normals {
		m.Normals[i] = mgl32.Vec3{0, 1, 0}
	}
	return m
}

// Grid is a fixed width x height block of cells. It is built once and never
// mutated.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid lays out width x height cells row by row. Negative sizes yield an
// empty grid.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	g := &Grid{width: width, height: height, cells: make([]Cell, 0, width*height)}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := Coord{Col: col, Row: row}
			g.cells = append(g.cells, Cell{Coord: c, Position: c.Center(), Biome: BiomeAt(c)})
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells returns the cells in row-major order. The slice must not be modified.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Cell returns the cell at c.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if c.Col < 0 || c.Row < 0 || c.Col >= g.width || c.Row >= g.height {
		return Cell{}, false
	}
	return g.cells[c.Row*g.width+c.Col], true
}

// Bounds returns the minimum and maximum corner positions over all cells.
func (g *Grid) Bounds() (lo, hi mgl32.Vec3) {
	if len(g.cells) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	inf := float32(math.Inf(1))
	lo = mgl32.Vec3{inf, 0, inf}
	hi = mgl32.Vec3{-inf, 0, -inf}
	for _, c := range g.cells {
		for _, corner := range corners {
			p := c.Position.Add(corner)
			lo[0], lo[2] = min(lo[0], p[0]), min(lo[2], p[2])
			hi[0], hi[2] = max(hi[0], p[0]), max(hi[2], p[2])
		}
	}
	return lo, hi
}

// Mesh merges every cell mesh into one, offsetting indices per cell. Grids
// larger than the uint16 index range are truncated to the cells that fit.
func (g *Grid) Mesh() Mesh {
	const perCell = 7
	n := min(len(g.cells), math.MaxUint16/perCell)
	m := Mesh{
		Vertices: make([]mgl32.Vec3, 0, n*perCell),
		Normals:  make([]mgl32.Vec3, 0, n*perCell),
		Indices:  make([]uint16, 0, n*len(fan)),
	}
	for i, c := range g.cells[:n] {
		cm := c.Mesh()
		base := uint16(i * perCell)
		m.Vertices = append(m.Vertices, cm.Vertices...)
		m.Normals = append(m.Normals, cm.Normals...)
		for _, idx := range cm.Indices {
			m.Indices = append(m.Indices, base+idx)
		}
	}
	return m
}
