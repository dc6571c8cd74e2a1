package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cave-dungeons/config"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout implements the Screen interface. Every screen shares the fixed
// logical size of the cave view.
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
