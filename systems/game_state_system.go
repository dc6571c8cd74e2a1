package systems

import (
	"fmt"

	"github.com/pkg/errors"

	"cave-dungeons/components"
	"cave-dungeons/config"
	"cave-dungeons/ecs"
	"cave-dungeons/generation"
)

// GameState is the process-wide game loop state
type GameState int

const (
	// StateDefault simulates entities every tick
	StateDefault GameState = iota
	// StateNext rebuilds the level after the player found the exit
	StateNext
	// StateDeath marks the tick the player was caught
	StateDeath
	// StateRespawning shows the death overlay until the respawn delay passes
	StateRespawning
)

// String returns a printable name for the state
func (s GameState) String() string {
	switch s {
	case StateNext:
		return "next"
	case StateDeath:
		return "death"
	case StateRespawning:
		return "respawning"
	default:
		return "default"
	}
}

// GameStateSystem ties level generation to per-tick entity updates and
// handles exits, deaths and respawns
type GameStateSystem struct {
	generator    *generation.LevelGenerator
	movement     *MovementSystem
	events       *ecs.EventManager
	clock        Clock
	level        *generation.Level
	state        GameState
	respawnStart int64
	deaths       int
}

// NewGameStateSystem creates the game loop and subscribes it to exit and
// caught events
func NewGameStateSystem(generator *generation.LevelGenerator, movement *MovementSystem, events *ecs.EventManager, clock Clock) *GameStateSystem {
	s := &GameStateSystem{
		generator: generator,
		movement:  movement,
		events:    events,
		clock:     clock,
		state:     StateDefault,
	}

	events.Subscribe(EventExitReached, func(event ecs.Event) {
		s.handleExit(event.(ExitReachedEvent))
	})
	events.Subscribe(EventPlayerCaught, func(event ecs.Event) {
		s.handleCaught(event.(PlayerCaughtEvent))
	})

	return s
}

// Start generates the first level
func (s *GameStateSystem) Start() error {
	return s.generateLevel()
}

// Update runs one tick of the game loop
func (s *GameStateSystem) Update() error {
	if s.level == nil {
		return errors.New("game loop updated before Start")
	}
	now := s.clock.Millis()

	switch s.state {
	case StateDefault:
		s.movement.Update(s.level, now)
	case StateRespawning:
		if now-s.respawnStart >= config.RespawnDelay {
			level := s.generator.Regress(config.DeathPenalty, config.MinLevel)
			GetDebugLog().Add(fmt.Sprintf("DEBUG: respawn, level counter dropped to %d", level))
			if err := s.generateLevel(); err != nil {
				return err
			}
			s.setState(StateDefault)
		}
	}

	// transitions raised by this tick's entity updates
	switch s.state {
	case StateNext:
		if err := s.generateLevel(); err != nil {
			return err
		}
		s.setState(StateDefault)
	case StateDeath:
		s.respawnStart = now
		s.setState(StateRespawning)
	}
	return nil
}

// State returns the current game state
func (s *GameStateSystem) State() GameState {
	return s.state
}

// Level returns the level being played
func (s *GameStateSystem) Level() *generation.Level {
	return s.level
}

// Deaths returns how many times the player has been caught
func (s *GameStateSystem) Deaths() int {
	return s.deaths
}

// RespawnRemaining returns the milliseconds left on the death overlay
func (s *GameStateSystem) RespawnRemaining() int64 {
	if s.state != StateRespawning {
		return 0
	}
	return max(0, config.RespawnDelay-(s.clock.Millis()-s.respawnStart))
}

// Snapshot returns the read-only view handed to render sinks
func (s *GameStateSystem) Snapshot() FrameView {
	view := FrameView{
		State:    s.state,
		Messages: GetMessageLog().RecentMessages(config.VisibleMessages),
	}
	if s.level == nil {
		return view
	}
	view.Grid = s.level.Grid
	view.LevelNumber = s.level.Number
	for _, e := range s.level.Entities() {
		view.Entities = append(view.Entities, EntitySprite{
			X:      e.X,
			Y:      e.Y,
			Kind:   e.Kind,
			Colour: e.Colour,
		})
	}
	return view
}

func (s *GameStateSystem) generateLevel() error {
	var player *components.Entity
	if s.level != nil {
		player = s.level.Player
	}
	level, err := s.generator.GenerateLevel(player)
	if err != nil {
		return errors.Wrap(err, "game loop")
	}
	s.level = level

	stats := s.generator.Stats()
	GetMessageLog().AddTyped(fmt.Sprintf("Level %d: %d enemies, %d iron claws", level.Number, stats.Enemies, stats.IronClaws), MessageTypeEnvironment)
	GetDebugLog().AddSystem(fmt.Sprintf("DEBUG: %d maze nodes, %d mazes, %d passages", stats.Nodes, stats.MazeComponents, stats.OpenPassages))
	s.events.Emit(LevelGeneratedEvent{Stats: stats})
	return nil
}

func (s *GameStateSystem) handleExit(event ExitReachedEvent) {
	if event.Entity == nil || !event.Entity.IsPlayer() || s.state != StateDefault {
		return
	}
	GetMessageLog().Add("You descend deeper into the caves.")
	s.setState(StateNext)
}

func (s *GameStateSystem) handleCaught(event PlayerCaughtEvent) {
	if s.state != StateDefault {
		return
	}
	s.deaths++
	name := "something"
	if event.By != nil {
		name = "an " + event.By.Kind.String()
	}
	GetMessageLog().AddAlert(fmt.Sprintf("You were caught by %s!", name))
	s.setState(StateDeath)
}

func (s *GameStateSystem) setState(to GameState) {
	if to == s.state {
		return
	}
	from := s.state
	s.state = to
	s.events.Emit(StateChangedEvent{From: from, To: to})
}
