package systems

import (
	"cave-dungeons/components"
	"cave-dungeons/ecs"
	"cave-dungeons/generation"
)

// Event type constants
const (
	EventExitReached    ecs.EventType = "exit_reached"
	EventPlayerCaught   ecs.EventType = "player_caught"
	EventMoveResolved   ecs.EventType = "move_resolved"
	EventLevelGenerated ecs.EventType = "level_generated"
	EventStateChanged   ecs.EventType = "state_changed"
)

// ExitReachedEvent is emitted when an entity's move resolves onto the exit
type ExitReachedEvent struct {
	Entity *components.Entity
}

// Type returns the event type
func (e ExitReachedEvent) Type() ecs.EventType {
	return EventExitReached
}

// PlayerCaughtEvent is emitted when a pursuing enemy shares the player's cell
type PlayerCaughtEvent struct {
	By *components.Entity
}

// Type returns the event type
func (e PlayerCaughtEvent) Type() ecs.EventType {
	return EventPlayerCaught
}

// MoveResolvedEvent is emitted when an entity's committed move resolves
type MoveResolvedEvent struct {
	Entity  *components.Entity
	Outcome components.Outcome
	ToX     int // Destination cell, whether or not it was entered
	ToY     int
}

// Type returns the event type
func (e MoveResolvedEvent) Type() ecs.EventType {
	return EventMoveResolved
}

// LevelGeneratedEvent is emitted after a new level replaces the old one
type LevelGeneratedEvent struct {
	Stats generation.GenerationStats
}

// Type returns the event type
func (e LevelGeneratedEvent) Type() ecs.EventType {
	return EventLevelGenerated
}

// StateChangedEvent is emitted on every game state transition
type StateChangedEvent struct {
	From GameState
	To   GameState
}

// Type returns the event type
func (e StateChangedEvent) Type() ecs.EventType {
	return EventStateChanged
}
