package generation

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"cave-dungeons/components"
	"cave-dungeons/config"
)

// GenerationStats summarizes the most recent level build
type GenerationStats struct {
	Level          int
	Nodes          int
	MazeComponents int
	OpenPassages   int
	Enemies        int
	IronClaws      int
}

// LevelGenerator handles procedural generation of cave levels. It owns the
// level counter, which only moves through GenerateLevel and Regress.
type LevelGenerator struct {
	rng    RandomSource
	noise  NoiseField
	level  int
	width  int
	height int
	stats  GenerationStats
}

// NewLevelGenerator creates a generator with a time based seed
func NewLevelGenerator() *LevelGenerator {
	seed := time.Now().UnixNano()
	return NewLevelGeneratorWith(rand.New(rand.NewSource(seed)), NewSimplexField(seed))
}

// NewLevelGeneratorWith creates a generator over explicit collaborators
func NewLevelGeneratorWith(rng RandomSource, noise NoiseField) *LevelGenerator {
	return &LevelGenerator{
		rng:    rng,
		noise:  noise,
		level:  config.InitialLevel,
		width:  config.XSize,
		height: config.YSize,
	}
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *LevelGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.noise = NewSimplexField(seed)
}

// SetSize overrides the grid dimensions
func (g *LevelGenerator) SetSize(width, height int) {
	g.width, g.height = width, height
}

// Level returns the level counter
func (g *LevelGenerator) Level() int {
	return g.level
}

// SetLevel overwrites the level counter
func (g *LevelGenerator) SetLevel(level int) {
	g.level = level
}

// Regress drops the counter by penalty levels, never below floor
func (g *LevelGenerator) Regress(penalty, floor int) int {
	g.level = max(g.level-penalty, floor)
	return g.level
}

// Stats returns the summary of the last generated level
func (g *LevelGenerator) Stats() GenerationStats {
	return g.stats
}

// GenerateLevel advances the counter and builds a new level: seeded cave,
// automaton steps, maze insertion and carving, then spawn pockets and the
// exit. The player entity is reused when given.
func (g *LevelGenerator) GenerateLevel(player *components.Entity) (*Level, error) {
	g.level++
	ancient := AncientnessPredicate(g.noise, g.level)

	grid := components.NewGrid(g.width, g.height)
	SeedCave(grid, config.FillPortion, ancient, g.rng)
	grid = RunCave(grid, config.AutomatonSteps)

	graph := InsertNodes(grid, ancient, g.rng)
	if err := NewMazeCarver(graph, grid).GeneratePerfectMaze(); err != nil {
		return nil, errors.Wrapf(err, "generating level %d", g.level)
	}

	numEnemies, numIronClaws := EnemyCounts(g.level)
	level := &Level{
		Number: g.level,
		Grid:   grid,
		Graph:  graph,
		Noise:  g.noise,
	}
	level.Player = spawnPlayer(grid, player)
	level.Enemies = spawnEnemies(grid, numEnemies, numIronClaws, g.rng)
	level.ExitX, level.ExitY = placeExit(grid)

	g.stats = GenerationStats{
		Level:          g.level,
		Nodes:          graph.NodeCount(),
		MazeComponents: len(graph.Components()),
		OpenPassages:   graph.OpenEdgeCount(),
		Enemies:        numEnemies,
		IronClaws:      numIronClaws,
	}
	return level, nil
}
