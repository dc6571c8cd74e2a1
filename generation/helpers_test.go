package generation

import (
	"strings"

	"cave-dungeons/components"
)

// noiseFunc adapts a plain function to NoiseField
type noiseFunc func(x, y, z float64) float64

func (f noiseFunc) Noise(x, y, z float64) float64 { return f(x, y, z) }

// gridFromRows builds a grid from rows of '#' (rock) and '.' (open)
func gridFromRows(rows ...string) *components.Grid {
	g := components.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Cells[y][x] = components.RockCell
			}
		}
	}
	return g
}

func rowsFromGrid(g *components.Grid) []string {
	rows := make([]string, g.Height)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] > 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func solidGrid(width, height int) *components.Grid {
	g := components.NewGrid(width, height)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = components.RockCell
		}
	}
	return g
}

// cellsAt builds an ancient predicate true on exactly the listed fine cells
func cellsAt(points ...[2]int) AncientPredicate {
	set := make(map[[2]int]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return func(x, y int) bool { return set[[2]int{x, y}] }
}
