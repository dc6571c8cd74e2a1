package generation

import (
	"image/color"
	"math"

	"cave-dungeons/components"
	"cave-dungeons/config"
)

// Entity templates per kind
var (
	PlayerTemplate = components.EntityTemplate{
		MinePower:  config.PlayerMinePower,
		MoveTime:   config.MoveTime,
		SettleTime: config.SettleTime,
		Colour:     color.RGBA{0, 128, 0, 255}, // Green
	}
	EnemyTemplate = components.EntityTemplate{
		MinePower:  config.EnemyMinePower,
		MoveTime:   config.MoveTime,
		SettleTime: config.SettleTime,
		Weak:       true,
		Colour:     color.RGBA{210, 105, 30, 255}, // Chocolate
	}
	IronClawTemplate = components.EntityTemplate{
		MinePower:  config.IronClawMinePower,
		MoveTime:   config.IronClawMoveTime,
		SettleTime: config.SettleTime,
		Colour:     color.RGBA{192, 192, 192, 255}, // Silver
	}
)

// TemplateFor returns the tuning of an entity kind
func TemplateFor(kind components.EntityKind) components.EntityTemplate {
	switch kind {
	case components.KindEnemy:
		return EnemyTemplate
	case components.KindIronClaw:
		return IronClawTemplate
	default:
		return PlayerTemplate
	}
}

// EnemyCounts returns how many weak enemies and iron claws a level holds
func EnemyCounts(level int) (enemies, ironClaws int) {
	enemies = int(math.Floor(float64(level+1) * config.NumEnemiesScaling))
	ironClaws = int(math.Floor(float64(level) * config.NumIronClawScale))
	return max(enemies, 0), max(ironClaws, 0)
}

// spawnPlayer clears the fixed start pocket and places the player there,
// creating it on first use
func spawnPlayer(grid *components.Grid, player *components.Entity) *components.Entity {
	grid.ClearRect(config.PlayerSpawnX, config.PlayerSpawnY, config.PlayerPocket)
	if player == nil {
		return components.NewEntity(components.KindPlayer, config.PlayerSpawnX, config.PlayerSpawnY, PlayerTemplate)
	}
	player.Reset(config.PlayerSpawnX, config.PlayerSpawnY)
	return player
}

// spawnEnemies places enemies at random spots in the far two thirds of the
// grid, each inside a cleared 3x3 pocket
func spawnEnemies(grid *components.Grid, numEnemies, numIronClaws int, rng RandomSource) []*components.Entity {
	enemies := make([]*components.Entity, 0, numEnemies+numIronClaws)
	spawn := func(kind components.EntityKind) {
		y := int(randomRange(rng, float64(grid.Height)/3, float64(grid.Height)))
		x := int(randomRange(rng, float64(grid.Width)/3, float64(grid.Width)))
		grid.ClearRect(x, y, config.EnemyPocket)
		enemies = append(enemies, components.NewEntity(kind, x, y, TemplateFor(kind)))
	}
	for n := 0; n < numEnemies; n++ {
		spawn(components.KindEnemy)
	}
	for n := 0; n < numIronClaws; n++ {
		spawn(components.KindIronClaw)
	}
	return enemies
}

// placeExit clears a 5x5 pocket near the far corner and puts the exit in it
func placeExit(grid *components.Grid) (int, int) {
	x := max(0, grid.Width-config.ExitInset)
	y := max(0, grid.Height-config.ExitInset)
	grid.ClearRect(x, y, config.ExitPocket)
	grid.Set(x, y, components.ExitCell)
	return x, y
}

// randomRange returns a uniform value in [lo, hi)
func randomRange(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
