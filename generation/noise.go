package generation

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"cave-dungeons/config"
)

// SimplexField samples normalized OpenSimplex noise
type SimplexField struct {
	noise opensimplex.Noise
}

// NewSimplexField creates a noise field for the given seed
func NewSimplexField(seed int64) *SimplexField {
	return &SimplexField{noise: opensimplex.NewNormalized(seed)}
}

// Noise returns the noise value at (x, y, z) in [0,1)
func (f *SimplexField) Noise(x, y, z float64) float64 {
	v := f.noise.Eval3(x, y, z)
	// guard the open upper bound
	if v >= 1 {
		v = 0.9999999
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Ancientness returns the labyrinth strength of fine cell (x, y) on a level.
// Rows are sampled on the first noise axis.
func Ancientness(field NoiseField, x, y, level int) float64 {
	return field.Noise(float64(y)/config.NoiseScale, float64(x)/config.NoiseScale, float64(level)/config.NoiseScale)
}

// AncientnessPredicate returns the ancient-cell test for one level
func AncientnessPredicate(field NoiseField, level int) AncientPredicate {
	return func(x, y int) bool {
		return Ancientness(field, x, y, level) > config.RichnessPortion
	}
}
