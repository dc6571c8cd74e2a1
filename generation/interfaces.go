package generation

// NoiseField is a deterministic coherent noise sampler returning values in [0,1)
type NoiseField interface {
	Noise(x, y, z float64) float64
}

// RandomSource supplies the randomness used during generation.
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// AncientPredicate reports whether fine cell (x, y) belongs to the buried labyrinth
type AncientPredicate func(x, y int) bool
