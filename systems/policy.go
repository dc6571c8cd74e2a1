package systems

import (
	"cave-dungeons/components"
	"cave-dungeons/generation"
)

// MovementPolicy selects how an entity picks its next half step
type MovementPolicy int

const (
	// PolicyPlayerInput follows the held movement keys
	PolicyPlayerInput MovementPolicy = iota
	// PolicyPursueWeak chases the player and wanders after getting stuck
	PolicyPursueWeak
	// PolicyPursueStrong chases the player and never wanders
	PolicyPursueStrong
)

// Half-cell jitter a stuck weak enemy picks from on each axis
var randomPossibilities = []float64{-0.5, 0, 0.5}

// PolicyFor returns the movement policy of an entity
func PolicyFor(e *components.Entity) MovementPolicy {
	switch {
	case e.Kind == components.KindPlayer:
		return PolicyPlayerInput
	case e.Weak:
		return PolicyPursueWeak
	default:
		return PolicyPursueStrong
	}
}

// step is a requested half-cell displacement
type step struct {
	dx, dy float64
	caught bool
}

func (s step) none() bool {
	return s.dx == 0 && s.dy == 0
}

// playerStep adds half a cell per held key. Opposite keys cancel out.
func playerStep(input InputState) step {
	var s step
	if input == nil {
		return s
	}
	for _, k := range MovementKeys {
		if input.IsKeyDown(k) {
			s.dx += keyMovement[k][0] / 2
			s.dy += keyMovement[k][1] / 2
		}
	}
	return s
}

// pursueStep moves half a cell towards the player on each axis where they
// differ. Sharing the player's position catches them instead.
func pursueStep(e, player *components.Entity) step {
	if player == nil {
		return step{}
	}
	xDisp := player.X - e.X
	yDisp := player.Y - e.Y
	if xDisp == 0 && yDisp == 0 {
		return step{caught: true}
	}

	var s step
	if xDisp > 0 {
		s.dx = 0.5
	} else if xDisp < 0 {
		s.dx = -0.5
	}
	if yDisp > 0 {
		s.dy = 0.5
	} else if yDisp < 0 {
		s.dy = -0.5
	}
	return s
}

// jitterStep picks a random half step on each axis
func jitterStep(rng generation.RandomSource) step {
	return step{
		dx: randomPossibilities[rng.Intn(len(randomPossibilities))],
		dy: randomPossibilities[rng.Intn(len(randomPossibilities))],
	}
}

// stuck reports whether the entity's last attempt failed to move it
func stuck(e *components.Entity) bool {
	return e.LastOutcome == components.OutcomeSlammed || e.LastOutcome == components.OutcomeHitEdge
}
