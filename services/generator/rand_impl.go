package generator

import (
	"math/rand"
	"sync"

	"shape-studio/services/types"

	"github.com/google/uuid"
)

// randGenerator is a math/rand backed implementation of ShapeGenerator
type randGenerator struct {
	seed int64
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewRandGenerator creates a seeded shape generator. Bubble Tea runs
// commands on their own goroutines, so draws are serialized internally.
func NewRandGenerator(seed int64) ShapeGenerator {
	return &randGenerator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (g *randGenerator) Seed() int64 {
	return g.seed
}

func (g *randGenerator) Generate(bounds Bounds) types.Shape {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Four independent draws, always in the same order so a given seed
	// reproduces the same sequence of shapes.
	geometry := g.geometry()
	colour := g.colour()
	size := g.size(bounds.MinSide, bounds.MaxSide)
	x := g.coordinate(bounds.CanvasWidth)
	y := g.coordinate(bounds.CanvasHeight)

	return types.Shape{
		ID:       uuid.New(),
		Geometry: geometry,
		Colour:   colour,
		Size:     size,
		X:        x,
		Y:        y,
	}
}

// geometry picks square or circle with equal weight.
func (g *randGenerator) geometry() types.Geometry {
	if g.rng.Intn(2) == 0 {
		return types.Square
	}
	return types.Circle
}

// colour picks a weighted colour: blue carries weight 2, the rest weight 1,
// so blue lands with probability 2/5 and the others 1/5 each.
func (g *randGenerator) colour() types.Colour {
	switch r := g.rng.Float64() * 5; {
	case r < 2:
		return types.Blue
	case r < 3:
		return types.Red
	case r < 4:
		return types.Green
	default:
		return types.Yellow
	}
}

// size draws uniformly from [min, max].
func (g *randGenerator) size(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// coordinate draws uniformly from [-extent/2, extent/2].
func (g *randGenerator) coordinate(extent float64) float64 {
	return g.rng.Float64()*extent - extent/2
}
