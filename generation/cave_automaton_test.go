package generation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"cave-dungeons/components"
)

func TestStepCave_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		x, y int
		want bool
	}{
		{
			name: "rock with three rock neighbours survives",
			rows: []string{
				".....",
				".##..",
				"..#..",
				"..#..",
				".....",
			},
			x: 2, y: 2, want: true,
		},
		{
			name: "rock with two rock neighbours dies",
			rows: []string{
				".....",
				".#...",
				"..#..",
				"..#..",
				".....",
			},
			x: 2, y: 2, want: false,
		},
		{
			name: "open cell with five rock neighbours is born",
			rows: []string{
				".....",
				".###.",
				".#.#.",
				".....",
				".....",
			},
			x: 2, y: 2, want: true,
		},
		{
			name: "open cell with four rock neighbours stays open",
			rows: []string{
				".....",
				".###.",
				".#...",
				".....",
				".....",
			},
			x: 2, y: 2, want: false,
		},
		{
			name: "corner counts neighbours across both wrapped edges",
			rows: []string{
				"....#",
				"....#",
				".....",
				".....",
				"##..#",
			},
			x: 0, y: 0, want: true,
		},
		{
			name: "corner with four wrapped neighbours stays open",
			rows: []string{
				"....#",
				".....",
				".....",
				".....",
				"##..#",
			},
			x: 0, y: 0, want: false,
		},
		{
			name: "corner rock with two wrapped neighbours dies",
			rows: []string{
				"#....",
				".....",
				".....",
				".....",
				"#...#",
			},
			x: 0, y: 0, want: false,
		},
		{
			name: "corner rock with three wrapped neighbours survives",
			rows: []string{
				"#...#",
				".....",
				".....",
				".....",
				"#...#",
			},
			x: 0, y: 0, want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := StepCave(gridFromRows(tt.rows...))
			assert.Equal(t, tt.want, next.Cells[tt.y][tt.x] > 0)
		})
	}
}

func TestStepCave_LeavesInputUntouched(t *testing.T) {
	rows := []string{
		"#.#.#",
		".#.#.",
		"#.#.#",
		".#.#.",
		"#.#.#",
	}
	in := gridFromRows(rows...)
	out := StepCave(in)

	assert.Equal(t, rows, rowsFromGrid(in))
	assert.NotSame(t, in, out)
}

func TestRunCave_StepCount(t *testing.T) {
	in := gridFromRows(
		"##...",
		"#....",
		"..##.",
		"..##.",
		".....",
	)
	manual := StepCave(StepCave(StepCave(in)))
	assert.Equal(t, rowsFromGrid(manual), rowsFromGrid(RunCave(in, 3)))
	assert.Equal(t, rowsFromGrid(in), rowsFromGrid(RunCave(in, 0)))
}

func TestSeedCave(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("no fill and no ancient cells leaves the grid open", func(t *testing.T) {
		g := solidGrid(8, 6)
		SeedCave(g, 0, func(x, y int) bool { return false }, rng)
		for _, row := range rowsFromGrid(g) {
			assert.Equal(t, "........", row)
		}
	})

	t.Run("ancient cells are always rock", func(t *testing.T) {
		g := components.NewGrid(8, 6)
		SeedCave(g, 0, cellsAt([2]int{3, 2}, [2]int{7, 5}), rng)
		assert.Equal(t, components.RockCell, g.At(3, 2))
		assert.Equal(t, components.RockCell, g.At(7, 5))
		assert.True(t, g.IsPassable(0, 0))
	})

	t.Run("full fill makes everything rock", func(t *testing.T) {
		g := components.NewGrid(8, 6)
		SeedCave(g, 1, nil, rng)
		for _, row := range rowsFromGrid(g) {
			assert.Equal(t, "########", row)
		}
	})
}
