package components

import (
	"image/color"
	"math"
)

// ExitCell is the density sentinel marking the level exit. It is never mined.
const ExitCell = 2.0

// RockCell is the density of freshly generated rock
const RockCell = 1.0

// CellKind classifies a grid cell for rendering
type CellKind int

const (
	CellPassable CellKind = iota
	CellRock
	CellExit
)

// Grid stores the level terrain as mining densities. Cells are indexed
// Cells[y][x]; 0 is passable, (0,1] is rock, ExitCell is the exit.
type Grid struct {
	Width  int
	Height int
	Cells  [][]float64
}

// NewGrid creates an empty (fully passable) grid
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([][]float64, height),
	}
	for y := 0; y < height; y++ {
		g.Cells[y] = make([]float64, width)
	}
	return g
}

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the density at (x, y). Out of bounds reads as rock.
func (g *Grid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		return RockCell
	}
	return g.Cells[y][x]
}

// Set sets the density at (x, y), ignoring out of bounds writes
func (g *Grid) Set(x, y int, density float64) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = math.Max(0, density)
	}
}

// Mine removes amount of density from (x, y), clamping at zero
func (g *Grid) Mine(x, y int, amount float64) {
	if !g.InBounds(x, y) || g.IsExit(x, y) {
		return
	}
	g.Cells[y][x] = math.Max(0, g.Cells[y][x]-amount)
}

// Clear makes (x, y) passable
func (g *Grid) Clear(x, y int) {
	g.Set(x, y, 0)
}

// ClearRect clears every cell within radius r of (cx, cy), clamped to the
// grid edges (no wraparound)
func (g *Grid) ClearRect(cx, cy, r int) {
	for y := max(0, cy-r); y <= min(cy+r, g.Height-1); y++ {
		for x := max(0, cx-r); x <= min(cx+r, g.Width-1); x++ {
			g.Cells[y][x] = 0
		}
	}
}

// IsExit reports whether (x, y) holds the exit sentinel
func (g *Grid) IsExit(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x] == ExitCell
}

// IsPassable reports whether (x, y) is open floor
func (g *Grid) IsPassable(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x] == 0
}

// Kind returns the render classification of (x, y)
func (g *Grid) Kind(x, y int) CellKind {
	switch {
	case g.IsExit(x, y):
		return CellExit
	case g.IsPassable(x, y):
		return CellPassable
	default:
		return CellRock
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	for y := range g.Cells {
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}

// GetWidth implements GridReader
func (g *Grid) GetWidth() int { return g.Width }

// GetHeight implements GridReader
func (g *Grid) GetHeight() int { return g.Height }

// GridReader is the read-only view of a grid handed to render sinks
type GridReader interface {
	GetWidth() int
	GetHeight() int
	At(x, y int) float64
	Kind(x, y int) CellKind
}

// Cell colours
var (
	PassableColor = color.RGBA{255, 255, 255, 255}
	ExitColor     = color.RGBA{218, 165, 32, 255} // Gold
)

// RockColor shades rock by density, darker means harder
func RockColor(density float64) color.RGBA {
	shade := uint8(255 * (1 - math.Min(1, density)))
	return color.RGBA{shade, shade, shade, 255}
}

// CellColor returns the display colour of a cell
func CellColor(g GridReader, x, y int) color.RGBA {
	switch g.Kind(x, y) {
	case CellExit:
		return ExitColor
	case CellPassable:
		return PassableColor
	default:
		return RockColor(g.At(x, y))
	}
}
