package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cave-dungeons/components"
	"cave-dungeons/config"
	"cave-dungeons/ecs"
	"cave-dungeons/generation"
)

type loopFixture struct {
	loop      *GameStateSystem
	generator *generation.LevelGenerator
	events    *ecs.EventManager
	clock     *MockClock
	keys      KeySet
}

func newLoopFixture(t *testing.T, seed int64) *loopFixture {
	t.Helper()
	f := &loopFixture{
		generator: generation.NewLevelGeneratorWith(rand.New(rand.NewSource(seed)), generation.NewSimplexField(seed)),
		events:    ecs.NewEventManager(),
		clock:     NewMockClock(0),
		keys:      KeySet{},
	}
	movement := NewMovementSystem(f.keys, rand.New(rand.NewSource(seed)), f.events)
	f.loop = NewGameStateSystem(f.generator, movement, f.events, f.clock)
	return f
}

func TestGameStateSystem_UpdateBeforeStart(t *testing.T) {
	f := newLoopFixture(t, 1)
	assert.Error(t, f.loop.Update())
}

func TestGameStateSystem_Start(t *testing.T) {
	f := newLoopFixture(t, 1)
	rec := record(f.events, EventLevelGenerated)

	require.NoError(t, f.loop.Start())
	assert.Equal(t, StateDefault, f.loop.State())
	assert.Equal(t, 0, f.loop.Level().Number)
	assert.Empty(t, f.loop.Level().Enemies)
	require.Len(t, rec.events, 1)
	assert.Equal(t, 0, rec.events[0].(LevelGeneratedEvent).Stats.Level)

	view := f.loop.Snapshot()
	assert.Equal(t, 0, view.LevelNumber)
	assert.Equal(t, StateDefault, view.State)
	assert.Equal(t, config.XSize, view.Grid.GetWidth())
	require.Len(t, view.Entities, 1)
	assert.Equal(t, components.KindPlayer, view.Entities[0].Kind)
	assert.Equal(t, float64(config.PlayerSpawnX), view.Entities[0].X)
}

func TestGameStateSystem_DeathRespawnCycle(t *testing.T) {
	f := newLoopFixture(t, 3)
	f.generator.SetLevel(4)
	require.NoError(t, f.loop.Start())
	require.Equal(t, 5, f.loop.Level().Number)
	player := f.loop.Level().Player

	f.clock.Set(10_000)
	f.events.Emit(PlayerCaughtEvent{By: f.loop.Level().Enemies[0]})
	assert.Equal(t, StateDeath, f.loop.State())
	assert.Equal(t, 1, f.loop.Deaths())

	require.NoError(t, f.loop.Update())
	assert.Equal(t, StateRespawning, f.loop.State())
	assert.Equal(t, int64(config.RespawnDelay), f.loop.RespawnRemaining())

	// caught again while the overlay shows: ignored
	f.events.Emit(PlayerCaughtEvent{By: f.loop.Level().Enemies[0]})
	assert.Equal(t, StateRespawning, f.loop.State())
	assert.Equal(t, 1, f.loop.Deaths())

	f.clock.Advance(config.RespawnDelay - 1)
	require.NoError(t, f.loop.Update())
	assert.Equal(t, StateRespawning, f.loop.State())
	assert.Equal(t, 5, f.loop.Level().Number)
	assert.Equal(t, int64(1), f.loop.RespawnRemaining())

	f.clock.Advance(1)
	require.NoError(t, f.loop.Update())
	assert.Equal(t, StateDefault, f.loop.State())
	assert.Equal(t, 4, f.loop.Level().Number)
	assert.Same(t, player, f.loop.Level().Player)
	assert.Equal(t, float64(config.PlayerSpawnX), player.X)
	assert.Equal(t, components.PhaseIdle, player.Phase)
	assert.Zero(t, f.loop.RespawnRemaining())
}

func TestGameStateSystem_DeathPenaltyFloor(t *testing.T) {
	f := newLoopFixture(t, 5)
	f.generator.SetLevel(2)
	require.NoError(t, f.loop.Start())

	var levels []int
	for i := 0; i < 4; i++ {
		f.events.Emit(PlayerCaughtEvent{})
		require.NoError(t, f.loop.Update())
		f.clock.Advance(config.RespawnDelay)
		require.NoError(t, f.loop.Update())
		levels = append(levels, f.loop.Level().Number)
	}
	assert.Equal(t, []int{2, 1, 0, 0}, levels)
	assert.Equal(t, 4, f.loop.Deaths())
}

func TestGameStateSystem_ExitEvent(t *testing.T) {
	f := newLoopFixture(t, 7)
	require.NoError(t, f.loop.Start())
	rec := record(f.events, EventStateChanged)
	player := f.loop.Level().Player

	f.events.Emit(ExitReachedEvent{Entity: player})
	assert.Equal(t, StateNext, f.loop.State())

	require.NoError(t, f.loop.Update())
	assert.Equal(t, StateDefault, f.loop.State())
	assert.Equal(t, 1, f.loop.Level().Number)
	assert.Same(t, player, f.loop.Level().Player)
	assert.Equal(t, []ecs.Event{
		StateChangedEvent{From: StateDefault, To: StateNext},
		StateChangedEvent{From: StateNext, To: StateDefault},
	}, rec.events)
}

func TestGameStateSystem_EnemyOnExitIgnored(t *testing.T) {
	f := newLoopFixture(t, 7)
	require.NoError(t, f.loop.Start())

	f.events.Emit(ExitReachedEvent{Entity: newEnemy(1, 1)})
	assert.Equal(t, StateDefault, f.loop.State())
}

func TestGameStateSystem_WalkIntoExit(t *testing.T) {
	f := newLoopFixture(t, 11)
	require.NoError(t, f.loop.Start())
	level := f.loop.Level()
	require.True(t, level.Grid.IsExit(level.ExitX, level.ExitY))

	level.Player.Reset(level.ExitX-1, level.ExitY)
	level.Grid.Clear(level.ExitX-1, level.ExitY)
	f.keys[KeyRight] = true

	require.NoError(t, f.loop.Update())
	assert.Equal(t, components.PhaseCommitting, level.Player.Phase)

	f.clock.Advance(config.MoveTime)
	require.NoError(t, f.loop.Update())
	assert.Equal(t, StateDefault, f.loop.State())
	assert.Equal(t, 1, f.loop.Level().Number)
	assert.NotSame(t, level, f.loop.Level())
	assert.Equal(t, float64(config.PlayerSpawnX), f.loop.Level().Player.X)
}

func TestGameStateSystem_CaughtByEnemyOnPlayer(t *testing.T) {
	f := newLoopFixture(t, 13)
	f.generator.SetLevel(1)
	require.NoError(t, f.loop.Start())
	level := f.loop.Level()
	require.NotEmpty(t, level.Enemies)

	enemy := level.Enemies[0]
	enemy.Reset(int(level.Player.X), int(level.Player.Y))

	require.NoError(t, f.loop.Update())
	assert.Equal(t, StateRespawning, f.loop.State())
	assert.Equal(t, 1, f.loop.Deaths())

	msgs := GetMessageLog().RecentMessages(1)
	require.Len(t, msgs, 1)
	assert.Equal(t, "You were caught by an enemy!", msgs[0].Text)
}
