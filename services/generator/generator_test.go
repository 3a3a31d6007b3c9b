package generator

import (
	"testing"

	"shape-studio/services/types"

	"github.com/stretchr/testify/require"
)

var testBounds = Bounds{
	CanvasWidth:  1280,
	CanvasHeight: 1024,
	MinSide:      20,
	MaxSide:      150,
}

func TestGenerate_SizeWithinBounds(t *testing.T) {
	req := require.New(t)
	gen := NewRandGenerator(42)

	for i := 0; i < 5000; i++ {
		s := gen.Generate(testBounds)
		req.GreaterOrEqual(s.Size, testBounds.MinSide)
		req.LessOrEqual(s.Size, testBounds.MaxSide)
	}
}

func TestGenerate_SizeWithDegenerateRange(t *testing.T) {
	req := require.New(t)
	gen := NewRandGenerator(42)

	// min == max pins the size exactly
	b := testBounds
	b.MinSide = 75
	b.MaxSide = 75
	for i := 0; i < 100; i++ {
		req.Equal(75.0, gen.Generate(b).Size)
	}
}

func TestGenerate_PositionWithinCanvas(t *testing.T) {
	req := require.New(t)
	gen := NewRandGenerator(7)

	for i := 0; i < 5000; i++ {
		s := gen.Generate(testBounds)
		req.GreaterOrEqual(s.X, -testBounds.CanvasWidth/2)
		req.LessOrEqual(s.X, testBounds.CanvasWidth/2)
		req.GreaterOrEqual(s.Y, -testBounds.CanvasHeight/2)
		req.LessOrEqual(s.Y, testBounds.CanvasHeight/2)
	}
}

func TestGenerate_ColourFrequencies(t *testing.T) {
	req := require.New(t)
	gen := NewRandGenerator(1)

	const n = 100000
	counts := map[types.Colour]int{}
	for i := 0; i < n; i++ {
		counts[gen.Generate(testBounds).Colour]++
	}

	// Blue carries weight 2 of 5, the others 1 of 5 each.
	const tolerance = 0.01
	req.InDelta(0.4, float64(counts[types.Blue])/n, tolerance)
	req.InDelta(0.2, float64(counts[types.Red])/n, tolerance)
	req.InDelta(0.2, float64(counts[types.Green])/n, tolerance)
	req.InDelta(0.2, float64(counts[types.Yellow])/n, tolerance)
}

func TestGenerate_GeometryFrequencies(t *testing.T) {
	req := require.New(t)
	gen := NewRandGenerator(1)

	const n = 100000
	counts := map[types.Geometry]int{}
	for i := 0; i < n; i++ {
		counts[gen.Generate(testBounds).Geometry]++
	}

	const tolerance = 0.01
	req.InDelta(0.5, float64(counts[types.Square])/n, tolerance)
	req.InDelta(0.5, float64(counts[types.Circle])/n, tolerance)
}

func TestGenerate_DeterministicForEqualSeeds(t *testing.T) {
	req := require.New(t)

	a := NewRandGenerator(99)
	b := NewRandGenerator(99)

	for i := 0; i < 50; i++ {
		sa := a.Generate(testBounds)
		sb := b.Generate(testBounds)
		// IDs differ; every sampled field must match.
		req.Equal(sa.Geometry, sb.Geometry)
		req.Equal(sa.Colour, sb.Colour)
		req.Equal(sa.Size, sb.Size)
		req.Equal(sa.X, sb.X)
		req.Equal(sa.Y, sb.Y)
	}
}

func TestGenerate_IndependentDrawsPerShape(t *testing.T) {
	req := require.New(t)
	gen := NewRandGenerator(5)

	// Shapes have distinct identities even when drawn back to back.
	a := gen.Generate(testBounds)
	b := gen.Generate(testBounds)
	req.NotEqual(a.ID, b.ID)
}

func TestMockShapeGenerator_RecordsCalls(t *testing.T) {
	req := require.New(t)
	mock := NewMockShapeGenerator()

	s := mock.Generate(testBounds)
	req.Equal(mock.DefaultShape, s)
	req.Len(mock.Calls, 1)
	req.Equal(testBounds, mock.Calls[0])
}
