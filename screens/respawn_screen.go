package screens

import (
	"fmt"

	"cave-dungeons/systems"
)

// RespawnScreen is the overlay shown while the player waits to respawn
type RespawnScreen struct {
	*ModalScreen
	loop *systems.GameStateSystem
}

// NewRespawnScreen creates the death overlay for the given game loop
func NewRespawnScreen(loop *systems.GameStateSystem) *RespawnScreen {
	return &RespawnScreen{
		ModalScreen: NewModalScreen("YOU WERE CAUGHT", "", 260, 70),
		loop:        loop,
	}
}

// Update refreshes the countdown
func (s *RespawnScreen) Update() error {
	remaining := s.loop.RespawnRemaining()
	s.SetContent(fmt.Sprintf("Respawning in %.1fs\nDeaths: %d", float64(remaining)/1000, s.loop.Deaths()))
	return nil
}
