package systems

import (
	"cave-dungeons/components"
	"cave-dungeons/ecs"
	"cave-dungeons/generation"
)

// flatNoise is a noise field with the same value everywhere
type flatNoise float64

func (n flatNoise) Noise(x, y, z float64) float64 { return float64(n) }

// scriptedRand replays fixed Intn results
type scriptedRand struct {
	ints []int
	next int
}

func (r *scriptedRand) Float64() float64 { return 0.5 }

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.next%len(r.ints)]
	r.next++
	return v % n
}

// recorder collects every event of the given types
type recorder struct {
	events []ecs.Event
}

func record(em *ecs.EventManager, types ...ecs.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		em.Subscribe(t, func(e ecs.Event) { r.events = append(r.events, e) })
	}
	return r
}

// testLevel builds an open level whose every cell has the given ancientness
func testLevel(width, height int, ancientness float64, player *components.Entity, enemies ...*components.Entity) *generation.Level {
	return &generation.Level{
		Grid:    components.NewGrid(width, height),
		Noise:   flatNoise(ancientness),
		Player:  player,
		Enemies: enemies,
	}
}

func newPlayer(x, y int) *components.Entity {
	return components.NewEntity(components.KindPlayer, x, y, generation.PlayerTemplate)
}

func newEnemy(x, y int) *components.Entity {
	return components.NewEntity(components.KindEnemy, x, y, generation.EnemyTemplate)
}

func newIronClaw(x, y int) *components.Entity {
	return components.NewEntity(components.KindIronClaw, x, y, generation.IronClawTemplate)
}
