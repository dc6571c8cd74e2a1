package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cave-dungeons/config"
	"cave-dungeons/screens"
	"cave-dungeons/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	screenStack *screens.ScreenStack
}

// NewGame creates the windowed frontend around a started game loop
func NewGame(loop *systems.GameStateSystem) *Game {
	stack := screens.NewScreenStack()
	stack.Push(screens.NewGameScreen(loop, systems.NewRenderSystem()))
	return &Game{screenStack: stack}
}

// Update updates the game state.
func (g *Game) Update() error {
	return g.screenStack.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
