package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cave-dungeons/components"
	"cave-dungeons/config"
)

// RenderSystem handles drawing frames to the ebiten screen
type RenderSystem struct {
	background color.RGBA
	gridLine   color.RGBA
	cellSize   float32
	originX    float32
	originY    float32
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		background: color.RGBA{0, 0, 139, 255}, // Dark blue
		gridLine:   color.RGBA{0, 0, 0, 50},
		cellSize:   config.CellSize,
		originX:    config.Padding,
		originY:    config.Padding,
	}
}

// Draw renders the grid, the entities and the status lines
func (s *RenderSystem) Draw(screen *ebiten.Image, view FrameView) {
	// Clear the screen
	screen.Fill(s.background)

	if view.Grid != nil {
		s.drawGrid(screen, view.Grid)
	}
	s.drawEntities(screen, view.Entities)
	s.drawStatus(screen, view)
}

// drawGrid draws one shaded square per cell
func (s *RenderSystem) drawGrid(screen *ebiten.Image, grid components.GridReader) {
	for y := 0; y < grid.GetHeight(); y++ {
		for x := 0; x < grid.GetWidth(); x++ {
			px := s.originX + float32(x)*s.cellSize
			py := s.originY + float32(y)*s.cellSize
			vector.DrawFilledRect(screen, px, py, s.cellSize, s.cellSize, components.CellColor(grid, x, y), false)
			vector.StrokeRect(screen, px, py, s.cellSize, s.cellSize, 1, s.gridLine, false)
		}
	}
}

// drawEntities draws every entity as a circle centred in its (possibly half) cell
func (s *RenderSystem) drawEntities(screen *ebiten.Image, sprites []EntitySprite) {
	radius := s.cellSize * config.EntityFilling / 2
	for _, sprite := range sprites {
		cx := s.originX + (float32(sprite.X)+0.5)*s.cellSize
		cy := s.originY + (float32(sprite.Y)+0.5)*s.cellSize
		vector.DrawFilledCircle(screen, cx, cy, radius, sprite.Colour, true)
	}
}

// drawStatus prints the level line and the latest messages under the grid
func (s *RenderSystem) drawStatus(screen *ebiten.Image, view FrameView) {
	y := int(s.originY) + config.YSize*config.CellSize + 4
	status := fmt.Sprintf("Level %d", view.LevelNumber)
	if view.State == StateRespawning {
		status += "  -  respawning"
	}
	ebitenutil.DebugPrintAt(screen, status, int(s.originX), y)

	for i, msg := range view.Messages {
		ebitenutil.DebugPrintAt(screen, msg.Text, int(s.originX)+200, y+i*16)
	}
}
