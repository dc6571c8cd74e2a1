package generation

import (
	"math"

	"cave-dungeons/components"
)

// Level is everything one generated level owns. It is replaced wholesale on
// regeneration; only the player entity carries over.
type Level struct {
	Number  int
	Grid    *components.Grid
	Graph   *MazeGraph
	Noise   NoiseField
	Player  *components.Entity
	Enemies []*components.Entity
	ExitX   int
	ExitY   int
}

// Ancientness returns the labyrinth strength of (x, y) on this level
func (l *Level) Ancientness(x, y int) float64 {
	return Ancientness(l.Noise, x, y, l.Number)
}

// MiningResistance is the density one unit of mine power removes from
// (x, y) per hit: (1 - ancientness)^4. Ancient rock gives way slowly.
func (l *Level) MiningResistance(x, y int) float64 {
	return math.Pow(1-l.Ancientness(x, y), 4)
}

// Entities returns the player followed by the enemies in spawn order
func (l *Level) Entities() []*components.Entity {
	all := make([]*components.Entity, 0, len(l.Enemies)+1)
	if l.Player != nil {
		all = append(all, l.Player)
	}
	return append(all, l.Enemies...)
}
