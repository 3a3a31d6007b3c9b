package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Geometry is the kind of primitive a shape renders as
type Geometry int

const (
	Square Geometry = iota
	Circle
)

func (g Geometry) String() string {
	switch g {
	case Square:
		return "square"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// Colour is one of the four tints a shape can carry
type Colour int

const (
	Red Colour = iota
	Blue
	Green
	Yellow
)

// RGB is the fixed triple a Colour maps to
type RGB struct {
	R, G, B uint8
}

// Tango palette values, matching the classic defaults for these names.
var colourTriples = map[Colour]RGB{
	Red:    {204, 0, 0},
	Blue:   {52, 101, 164},
	Green:  {115, 210, 22},
	Yellow: {237, 212, 0},
}

// RGB returns the fixed triple for the colour.
func (c Colour) RGB() RGB {
	return colourTriples[c]
}

// Hex returns the colour as a #RRGGBB string for terminal styling.
func (c Colour) Hex() string {
	t := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", t.R, t.G, t.B)
}

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Colours lists every colour in declaration order.
func Colours() []Colour {
	return []Colour{Red, Blue, Green, Yellow}
}

// Shape is one generated primitive. Immutable once created; shapes are
// only ever prepended to a model's list, never mutated in place.
//
// Size is the side length for squares and the radius for circles.
// X and Y are in a centered coordinate system with the origin at the
// middle of the canvas.
type Shape struct {
	ID       uuid.UUID `json:"id"`
	Geometry Geometry  `json:"geometry"`
	Colour   Colour    `json:"colour"`
	Size     float64   `json:"size"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
}

// Covers reports whether the point (px, py), in centered canvas
// coordinates, falls inside the shape.
func (s Shape) Covers(px, py float64) bool {
	dx := px - s.X
	dy := py - s.Y
	switch s.Geometry {
	case Square:
		half := s.Size / 2
		return dx >= -half && dx <= half && dy >= -half && dy <= half
	case Circle:
		return dx*dx+dy*dy <= s.Size*s.Size
	default:
		return false
	}
}

// Canvas is the drawable region shapes are spawned onto.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
