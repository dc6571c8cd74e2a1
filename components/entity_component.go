package components

import "image/color"

// EntityKind selects an entity's movement policy and tuning
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindIronClaw
)

// String returns a printable name for the kind
func (k EntityKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindIronClaw:
		return "iron claw"
	default:
		return "player"
	}
}

// TurnPhase is the per-entity movement timing state
type TurnPhase int

const (
	// PhaseIdle means the entity will ask its policy for a direction
	PhaseIdle TurnPhase = iota
	// PhaseCommitting means the entity holds at a half-cell midpoint
	PhaseCommitting
	// PhaseSettling means the entity rests after a resolved move
	PhaseSettling
)

// String returns a printable name for the phase
func (p TurnPhase) String() string {
	switch p {
	case PhaseCommitting:
		return "committing"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Outcome is the result of an entity's latest move attempt
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeSlammed
	OutcomeHitEdge
	OutcomeHitExit
)

// String returns the outcome tag
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeSlammed:
		return "slammed"
	case OutcomeHitEdge:
		return "hit_edge"
	case OutcomeHitExit:
		return "hit_exit"
	default:
		return "none"
	}
}

// EntityTemplate holds the per-kind tuning of an entity
type EntityTemplate struct {
	MinePower  float64
	MoveTime   int64 // milliseconds
	SettleTime int64 // milliseconds of rest after each resolved move
	Weak       bool  // wanders randomly after getting stuck
	Colour     color.RGBA
}

// Entity is a turn-based actor on the grid. X and Y are half-integers while
// the entity is committing a move; PrevX and PrevY are always whole cells.
type Entity struct {
	Kind         EntityKind
	X, Y         float64
	PrevX, PrevY int
	Timer        int64
	Phase        TurnPhase
	MinePower    float64
	MoveTime     int64
	SettleTime   int64
	Weak         bool
	LastOutcome  Outcome
	Colour       color.RGBA
}

// NewEntity creates an idle entity at (x, y) tuned by the template
func NewEntity(kind EntityKind, x, y int, tmpl EntityTemplate) *Entity {
	e := &Entity{
		Kind:       kind,
		MinePower:  tmpl.MinePower,
		MoveTime:   tmpl.MoveTime,
		SettleTime: tmpl.SettleTime,
		Weak:       tmpl.Weak,
		Colour:     tmpl.Colour,
	}
	e.Reset(x, y)
	return e
}

// Reset moves the entity to (x, y) and clears its turn state
func (e *Entity) Reset(x, y int) {
	e.X, e.Y = float64(x), float64(y)
	e.PrevX, e.PrevY = x, y
	e.Timer = 0
	e.Phase = PhaseIdle
	e.LastOutcome = OutcomeNone
}

// ForceBack returns the entity to its previous cell
func (e *Entity) ForceBack() {
	e.X, e.Y = float64(e.PrevX), float64(e.PrevY)
}

// Proceed commits the entity to (x, y)
func (e *Entity) Proceed(x, y int) {
	e.X, e.Y = float64(x), float64(y)
	e.PrevX, e.PrevY = x, y
}

// Destination is the full cell the current half step leads to
func (e *Entity) Destination() (int, int) {
	return int(2*e.X) - e.PrevX, int(2*e.Y) - e.PrevY
}

// IsPlayer reports whether the entity is the player
func (e *Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}
