package generator

import (
	"shape-studio/services/types"
)

// Bounds constrains a single generation request. Canvas dimensions define
// the position range, MinSide/MaxSide the size range.
type Bounds struct {
	CanvasWidth  float64
	CanvasHeight float64
	MinSide      float64
	MaxSide      float64
}

// ShapeGenerator produces randomly parameterized shapes. Implementations
// draw geometry, colour, size and position independently; the same seed
// and call sequence always yields the same shapes.
type ShapeGenerator interface {
	// Generate draws one shape within the given bounds and advances the
	// generator's random state.
	Generate(bounds Bounds) types.Shape

	// Seed returns the seed the generator was created with.
	Seed() int64
}
