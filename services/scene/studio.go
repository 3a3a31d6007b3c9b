package scene

import (
	"math"
	"strconv"
	"strings"

	"shape-studio/services/generator"
	"shape-studio/services/types"
)

// Hard ceilings for the editable canvas.
const (
	MaxCanvasWidth  = 3860.0
	MaxCanvasHeight = 2140.0
)

// Studio is the interactive variant's model: an editable canvas that
// spawns one shape per tick while started.
//
// Invariants: 0 <= MinSide <= MaxSide <= Canvas.Height,
// Canvas.Width <= MaxWidth, Canvas.Height <= MaxHeight.
type Studio struct {
	Shapes  []types.Shape // newest first
	Canvas  types.Canvas
	Started bool

	MaxWidth  float64
	MaxHeight float64
	MinSide   float64
	MaxSide   float64
}

// NewStudio builds a studio model, clamping the initial values into the
// model's invariants.
func NewStudio(canvas types.Canvas, minSide, maxSide float64) Studio {
	canvas.Width = math.Min(canvas.Width, MaxCanvasWidth)
	canvas.Height = math.Min(canvas.Height, MaxCanvasHeight)
	minSide = math.Max(0, minSide)
	maxSide = math.Min(canvas.Height, math.Max(maxSide, minSide))
	minSide = math.Min(minSide, maxSide)

	return Studio{
		Canvas:    canvas,
		MaxWidth:  MaxCanvasWidth,
		MaxHeight: MaxCanvasHeight,
		MinSide:   minSide,
		MaxSide:   maxSide,
	}
}

// Bounds returns the generation bounds the current configuration allows.
func (s Studio) Bounds() generator.Bounds {
	return generator.Bounds{
		CanvasWidth:  s.Canvas.Width,
		CanvasHeight: s.Canvas.Height,
		MinSide:      s.MinSide,
		MaxSide:      s.MaxSide,
	}
}

// Step is the studio transition function. It never mutates the receiver.
func (s Studio) Step(msg Msg) (Studio, []Command) {
	switch msg := msg.(type) {
	case TickMsg:
		if !s.Started {
			return s, nil
		}
		return s, []Command{GenerateCommand{Bounds: s.Bounds()}}

	case ShapeMsg:
		next := s
		next.Shapes = prepend(s.Shapes, msg.Shape)
		return next, nil

	case ToggleMsg:
		next := s
		next.Started = !s.Started
		return next, nil

	case ClearMsg:
		next := s
		next.Shapes = nil
		return next, nil

	case SetWidthMsg:
		v, ok := parseField(msg.Raw)
		if !ok {
			return s, nil
		}
		next := s
		// Clamped to the ceiling only; typing 0 or a negative width is
		// allowed and simply yields an empty canvas.
		next.Canvas.Width = math.Min(v, s.MaxWidth)
		return next, nil

	case SetHeightMsg:
		v, ok := parseField(msg.Raw)
		if !ok {
			return s, nil
		}
		next := s
		next.Canvas.Height = math.Min(v, s.MaxHeight)
		return next, nil

	case SetMinSideMsg:
		v, ok := parseField(msg.Raw)
		if !ok {
			return s, nil
		}
		next := s
		next.MinSide = math.Max(0, math.Min(v, s.MaxSide))
		return next, nil

	case SetMaxSideMsg:
		v, ok := parseField(msg.Raw)
		if !ok {
			return s, nil
		}
		next := s
		next.MaxSide = math.Min(s.Canvas.Height, math.Max(v, s.MinSide))
		return next, nil
	}

	return s, nil
}

// parseField converts raw input text to a float. Unparseable input is
// reported as not-ok so the caller keeps the previous value; no error is
// ever surfaced to the user.
func parseField(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
