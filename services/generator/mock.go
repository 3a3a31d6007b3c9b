package generator

import (
	"shape-studio/services/types"

	"github.com/google/uuid"
)

// MockShapeGenerator is a mock implementation of ShapeGenerator for testing
type MockShapeGenerator struct {
	// Function fields for overriding behavior
	GenerateFunc func(bounds Bounds) types.Shape
	SeedFunc     func() int64

	// Default responses for simple cases
	DefaultShape types.Shape
	DefaultSeed  int64

	// Bounds received by Generate, in call order
	Calls []Bounds
}

// NewMockShapeGenerator creates a new mock with sensible defaults
func NewMockShapeGenerator() *MockShapeGenerator {
	return &MockShapeGenerator{
		DefaultShape: types.Shape{
			ID:       uuid.New(),
			Geometry: types.Square,
			Colour:   types.Blue,
			Size:     50,
			X:        0,
			Y:        0,
		},
		DefaultSeed: 1,
	}
}

func (m *MockShapeGenerator) Generate(bounds Bounds) types.Shape {
	m.Calls = append(m.Calls, bounds)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(bounds)
	}
	return m.DefaultShape
}

func (m *MockShapeGenerator) Seed() int64 {
	if m.SeedFunc != nil {
		return m.SeedFunc()
	}
	return m.DefaultSeed
}
