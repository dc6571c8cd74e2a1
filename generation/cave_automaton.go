package generation

import (
	"cave-dungeons/components"
	"cave-dungeons/config"
)

// SeedCave fills the grid with random rock: every cell becomes rock with
// chance fillPortion, and ancient cells are always rock.
func SeedCave(grid *components.Grid, fillPortion float64, ancient AncientPredicate, rng RandomSource) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			solid := rng.Float64() < fillPortion
			if ancient != nil && ancient(x, y) {
				solid = true
			}
			if solid {
				grid.Cells[y][x] = components.RockCell
			} else {
				grid.Cells[y][x] = 0
			}
		}
	}
}

// StepCave runs one automaton generation and returns the new grid. Rock
// survives with at least SurviveThreshold rock neighbours; open cells turn
// to rock with at least BirthThreshold. The input grid is left untouched.
func StepCave(grid *components.Grid) *components.Grid {
	next := components.NewGrid(grid.Width, grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			walls := countAdjacentRock(grid, x, y)
			if grid.Cells[y][x] > 0 {
				if walls >= config.SurviveThreshold {
					next.Cells[y][x] = components.RockCell
				}
			} else if walls >= config.BirthThreshold {
				next.Cells[y][x] = components.RockCell
			}
		}
	}
	return next
}

// RunCave applies StepCave the given number of times
func RunCave(grid *components.Grid, steps int) *components.Grid {
	for i := 0; i < steps; i++ {
		grid = StepCave(grid)
	}
	return grid
}

// countAdjacentRock counts rock among the 8 neighbours of (x, y). The grid
// wraps at its edges, so border cells see the opposite border.
func countAdjacentRock(grid *components.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := wrapIndices(grid, x+dx, y+dy)
			if grid.Cells[ny][nx] > 0 {
				count++
			}
		}
	}
	return count
}

func wrapIndices(grid *components.Grid, x, y int) (int, int) {
	x = (x%grid.Width + grid.Width) % grid.Width
	y = (y%grid.Height + grid.Height) % grid.Height
	return x, y
}
