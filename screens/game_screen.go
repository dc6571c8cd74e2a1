package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cave-dungeons/config"
	"cave-dungeons/systems"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	loop         *systems.GameStateSystem
	renderSystem *systems.RenderSystem
	respawn      *RespawnScreen
	screenStack  *ScreenStack
}

// NewGameScreen creates a new game screen around a started game loop
func NewGameScreen(loop *systems.GameStateSystem, renderSystem *systems.RenderSystem) *GameScreen {
	return &GameScreen{
		BaseScreen:   NewBaseScreen(),
		loop:         loop,
		renderSystem: renderSystem,
		respawn:      NewRespawnScreen(loop),
		screenStack:  NewScreenStack(),
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// A modal on the stack takes all input and pauses the game
	if s.screenStack.Len() > 0 {
		return s.screenStack.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.screenStack.Push(NewDebugScreen())
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if err := s.loop.Update(); err != nil {
		return err
	}
	if s.loop.State() == systems.StateRespawning {
		return s.respawn.Update()
	}
	return nil
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.loop.Snapshot())

	if s.loop.State() == systems.StateRespawning {
		s.respawn.Draw(screen)
	}
	s.screenStack.Draw(screen)
}

// Layout implements the Screen interface
func (s *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
