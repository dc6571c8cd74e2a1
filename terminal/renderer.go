package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"cave-dungeons/components"
	"cave-dungeons/systems"
)

// Renderer draws frames to a tcell screen, one terminal cell per grid cell
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
}

var _ systems.RenderSink = (*Renderer)(nil)

// NewRenderer creates a render sink over screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
}

// Render implements systems.RenderSink
func (r *Renderer) Render(view systems.FrameView) {
	r.screen.Clear()

	height := 0
	if view.Grid != nil {
		height = view.Grid.GetHeight()
		for y := 0; y < height; y++ {
			for x := 0; x < view.Grid.GetWidth(); x++ {
				glyph, style := CellGlyph(view.Grid, x, y)
				r.screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}

	for _, sprite := range view.Entities {
		x := int(math.Round(sprite.X))
		y := int(math.Round(sprite.Y))
		style := r.base.Foreground(rgb(sprite.Colour))
		r.screen.SetContent(x, y, EntityGlyph(sprite.Kind), nil, style)
	}

	status := fmt.Sprintf("Level %d", view.LevelNumber)
	if view.State == systems.StateRespawning {
		status += "  -  respawning"
	}
	r.drawText(0, height, status, r.base)
	for i, msg := range view.Messages {
		r.drawText(0, height+1+i, msg.Text, r.base.Foreground(rgb(msg.GetColor())))
	}

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// CellGlyph returns the glyph and style of one grid cell. Rock is banded by
// density: # solid, ▒ worn, ░ nearly mined through.
func CellGlyph(grid components.GridReader, x, y int) (rune, tcell.Style) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(rgb(components.CellColor(grid, x, y)))
	switch grid.Kind(x, y) {
	case components.CellExit:
		return '>', style
	case components.CellPassable:
		return ' ', style
	}

	switch d := grid.At(x, y); {
	case d >= 2.0/3:
		return '#', style
	case d >= 1.0/3:
		return '▒', style
	default:
		return '░', style
	}
}

// EntityGlyph returns the glyph drawn for an entity kind
func EntityGlyph(kind components.EntityKind) rune {
	switch kind {
	case components.KindEnemy:
		return 'e'
	case components.KindIronClaw:
		return 'E'
	default:
		return '@'
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
