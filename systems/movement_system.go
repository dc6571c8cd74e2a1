package systems

import (
	"fmt"

	"cave-dungeons/components"
	"cave-dungeons/ecs"
	"cave-dungeons/generation"
)

// MovementSystem drives the per-entity move and mine state machine
type MovementSystem struct {
	input  InputState
	rng    generation.RandomSource
	events *ecs.EventManager
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(input InputState, rng generation.RandomSource, events *ecs.EventManager) *MovementSystem {
	return &MovementSystem{
		input:  input,
		rng:    rng,
		events: events,
	}
}

// Update advances every entity of the level in order against one clock
// reading. Grid changes made by an earlier entity are seen by later ones.
func (s *MovementSystem) Update(level *generation.Level, now int64) {
	for _, e := range level.Entities() {
		s.UpdateEntity(level, e, now)
	}
}

// UpdateEntity advances one entity's turn state
func (s *MovementSystem) UpdateEntity(level *generation.Level, e *components.Entity, now int64) {
	switch e.Phase {
	case components.PhaseIdle:
		next := s.direction(level, e)
		if next.caught {
			s.events.Emit(PlayerCaughtEvent{By: e})
			return
		}
		if next.none() {
			return
		}
		e.X += next.dx
		e.Y += next.dy
		e.Phase = components.PhaseCommitting
		e.Timer = now

	case components.PhaseCommitting:
		if now-e.Timer < e.MoveTime {
			return
		}
		s.resolve(level, e)
		if e.SettleTime > 0 {
			e.Phase = components.PhaseSettling
			e.Timer = now
		} else {
			e.Phase = components.PhaseIdle
		}

	case components.PhaseSettling:
		if now-e.Timer >= e.SettleTime {
			e.Phase = components.PhaseIdle
		}
	}
}

// direction asks the entity's policy for its next half step
func (s *MovementSystem) direction(level *generation.Level, e *components.Entity) step {
	switch PolicyFor(e) {
	case PolicyPlayerInput:
		return playerStep(s.input)
	case PolicyPursueWeak:
		if stuck(e) {
			return jitterStep(s.rng)
		}
		return pursueStep(e, level.Player)
	default:
		return pursueStep(e, level.Player)
	}
}

// resolve settles a committed half step against the grid
func (s *MovementSystem) resolve(level *generation.Level, e *components.Entity) {
	grid := level.Grid
	toX, toY := e.Destination()

	switch {
	case !grid.InBounds(toX, toY):
		e.ForceBack()
		e.LastOutcome = components.OutcomeHitEdge

	case grid.IsExit(toX, toY):
		e.ForceBack()
		e.LastOutcome = components.OutcomeHitExit
		s.events.Emit(ExitReachedEvent{Entity: e})

	case grid.At(toX, toY) >= level.MiningResistance(toX, toY)*e.MinePower:
		grid.Mine(toX, toY, level.MiningResistance(toX, toY)*e.MinePower)
		e.ForceBack()
		e.LastOutcome = components.OutcomeSlammed

	default:
		grid.Clear(toX, toY)
		e.Proceed(toX, toY)
		e.LastOutcome = components.OutcomeMoved
	}

	GetDebugLog().Add(fmt.Sprintf("DEBUG: %s -> (%d,%d): %s", e.Kind, toX, toY, e.LastOutcome))
	s.events.Emit(MoveResolvedEvent{
		Entity:  e,
		Outcome: e.LastOutcome,
		ToX:     toX,
		ToY:     toY,
	})
}
