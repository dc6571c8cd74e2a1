package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Key is a logical movement key
type Key int

const (
	KeyUp Key = iota
	KeyLeft
	KeyDown
	KeyRight
)

// MovementKeys lists the movement keys in polling order (W, A, S, D)
var MovementKeys = []Key{KeyUp, KeyLeft, KeyDown, KeyRight}

// keyMovement is the unit displacement of each movement key
var keyMovement = map[Key][2]float64{
	KeyUp:    {0, -1},
	KeyLeft:  {-1, 0},
	KeyDown:  {0, 1},
	KeyRight: {1, 0},
}

// InputState is polled once per tick for the keys currently held down
type InputState interface {
	IsKeyDown(k Key) bool
}

// KeySet is an InputState backed by a set of held keys
type KeySet map[Key]bool

// IsKeyDown implements InputState
func (s KeySet) IsKeyDown(k Key) bool {
	return s[k]
}

// EbitenInput reads held keys from ebiten
type EbitenInput struct {
	// Map of ebiten keys to logical keys
	bindings map[ebiten.Key]Key
}

// NewEbitenInput creates an input reader with WASD and arrow key bindings
func NewEbitenInput() *EbitenInput {
	in := &EbitenInput{
		bindings: make(map[ebiten.Key]Key),
	}

	// WASD
	in.bindings[ebiten.KeyW] = KeyUp
	in.bindings[ebiten.KeyA] = KeyLeft
	in.bindings[ebiten.KeyS] = KeyDown
	in.bindings[ebiten.KeyD] = KeyRight

	// Arrow keys
	in.bindings[ebiten.KeyArrowUp] = KeyUp
	in.bindings[ebiten.KeyArrowLeft] = KeyLeft
	in.bindings[ebiten.KeyArrowDown] = KeyDown
	in.bindings[ebiten.KeyArrowRight] = KeyRight

	return in
}

// IsKeyDown reports whether any ebiten key bound to k is held
func (in *EbitenInput) IsKeyDown(k Key) bool {
	for key, bound := range in.bindings {
		if bound == k && ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
