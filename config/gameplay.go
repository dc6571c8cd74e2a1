package config

// Grid dimensions in cells
const (
	XSize = 60
	YSize = 30
)

// Cave generation
const (
	// Chance of a cell starting as rock before the automaton runs
	FillPortion = 0.45

	// Ancientness above which a cell belongs to the buried labyrinth
	RichnessPortion = 0.5

	// Divisor applied to cell and level coordinates before sampling noise
	NoiseScale = 10.0

	// Automaton generations run before the maze is inserted
	AutomatonSteps = 3

	// A rock cell survives with at least this many rock neighbours
	SurviveThreshold = 3

	// An open cell turns to rock with at least this many rock neighbours
	BirthThreshold = 5
)

// Spawning
const (
	PlayerSpawnX      = 4
	PlayerSpawnY      = 4
	PlayerPocket      = 2 // 5x5
	EnemyPocket       = 1 // 3x3
	ExitPocket        = 2 // 5x5
	ExitInset         = 5
	NumEnemiesScaling = 0.5
	NumIronClawScale  = 0.25
)

// Entity tuning
const (
	MoveTime         = 50 // ms between a half step and its resolution
	IronClawMoveTime = 80
	SettleTime       = 0  // ms rest after a resolved move

	PlayerMinePower   = 1.0
	EnemyMinePower    = 0.0001
	IronClawMinePower = 0.8
)

// Game loop
const (
	// How long the death overlay shows before the level is rebuilt (ms)
	RespawnDelay = 2000

	// Levels lost on death
	DeathPenalty = 2

	// Lowest value the level counter drops to before regeneration
	MinLevel = -1

	// Level counter before the first generation
	InitialLevel = -1
)
