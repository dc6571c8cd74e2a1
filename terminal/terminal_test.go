package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cave-dungeons/components"
	"cave-dungeons/systems"
)

func TestKeyHold(t *testing.T) {
	clock := systems.NewMockClock(1000)
	hold := NewKeyHold(clock)

	assert.False(t, hold.IsKeyDown(systems.KeyUp))

	assert.True(t, hold.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, hold.IsKeyDown(systems.KeyUp))
	assert.False(t, hold.IsKeyDown(systems.KeyDown))

	clock.Advance(HoldWindow - 1)
	assert.True(t, hold.IsKeyDown(systems.KeyUp))
	clock.Advance(1)
	assert.False(t, hold.IsKeyDown(systems.KeyUp), "released once the window passes")

	assert.True(t, hold.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.True(t, hold.IsKeyDown(systems.KeyRight))

	assert.False(t, hold.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
}

func TestCellGlyph(t *testing.T) {
	grid := components.NewGrid(5, 1)
	grid.Set(1, 0, 1)
	grid.Set(2, 0, 0.5)
	grid.Set(3, 0, 0.1)
	grid.Set(4, 0, components.ExitCell)

	var glyphs []rune
	for x := 0; x < 5; x++ {
		g, _ := CellGlyph(grid, x, 0)
		glyphs = append(glyphs, g)
	}
	assert.Equal(t, []rune{' ', '#', '▒', '░', '>'}, glyphs)
}

func TestRenderer_Render(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(6, 4)

	grid := components.NewGrid(6, 2)
	grid.Set(0, 0, 1)
	grid.Set(5, 1, components.ExitCell)

	NewRenderer(scr).Render(systems.FrameView{
		Grid: grid,
		Entities: []systems.EntitySprite{
			{X: 2, Y: 0, Kind: components.KindPlayer},
			{X: 3, Y: 1, Kind: components.KindEnemy},
			{X: 4, Y: 1, Kind: components.KindIronClaw},
		},
		LevelNumber: 3,
		Messages:    []systems.ColoredMessage{{Text: "hi"}},
	})

	cells, width, _ := scr.GetContents()
	row := func(y int) string {
		var buf bytes.Buffer
		for x := 0; x < width; x++ {
			buf.Write(cells[y*width+x].Bytes)
		}
		return buf.String()
	}
	assert.Equal(t, "# @   ", row(0))
	assert.Equal(t, "   eE>", row(1))
	assert.Equal(t, "Level ", row(2))
	assert.Equal(t, "hi    ", row(3))
}
