package scene

import (
	"testing"

	"shape-studio/services/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStudio() Studio {
	return NewStudio(types.Canvas{Width: 800, Height: 600}, 20, 150)
}

func testShape() types.Shape {
	return types.Shape{
		ID:       uuid.New(),
		Geometry: types.Circle,
		Colour:   types.Green,
		Size:     40,
		X:        10,
		Y:        -5,
	}
}

func TestNewStudio_ClampsInitialValues(t *testing.T) {
	req := require.New(t)

	// Given initial values outside every invariant
	s := NewStudio(types.Canvas{Width: 9000, Height: 9000}, -5, 99999)

	// Then everything lands inside the model's bounds
	req.Equal(MaxCanvasWidth, s.Canvas.Width)
	req.Equal(MaxCanvasHeight, s.Canvas.Height)
	req.Equal(0.0, s.MinSide)
	req.Equal(s.Canvas.Height, s.MaxSide)
}

func TestStudio_TickWhileStarted_RequestsOneShape(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	// Given a started studio
	s, _ = s.Step(ToggleMsg{})
	req.True(s.Started)

	// When a tick arrives
	next, cmds := s.Step(TickMsg{})

	// Then exactly one generation is requested and nothing else changes
	req.Len(cmds, 1)
	gen, ok := cmds[0].(GenerateCommand)
	req.True(ok)
	req.Equal(s.Bounds(), gen.Bounds)
	req.Equal(s.Shapes, next.Shapes)
}

func TestStudio_TickWhileStopped_DoesNothing(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	next, cmds := s.Step(TickMsg{})

	req.Empty(cmds)
	req.Equal(s, next)
}

func TestStudio_ShapePrependedNewestFirst(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	first := testShape()
	second := testShape()

	s, _ = s.Step(ShapeMsg{Shape: first})
	s, _ = s.Step(ShapeMsg{Shape: second})

	req.Len(s.Shapes, 2)
	req.Equal(second.ID, s.Shapes[0].ID)
	req.Equal(first.ID, s.Shapes[1].ID)
}

func TestStudio_ToggleFlipsStartedOnly(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()
	s, _ = s.Step(ShapeMsg{Shape: testShape()})

	started, _ := s.Step(ToggleMsg{})
	req.True(started.Started)
	req.Equal(s.Shapes, started.Shapes)

	stopped, _ := started.Step(ToggleMsg{})
	req.False(stopped.Started)
}

func TestStudio_ClearEmptiesShapesOnly(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()
	s, _ = s.Step(ShapeMsg{Shape: testShape()})
	s, _ = s.Step(ToggleMsg{})

	// When clearing
	next, cmds := s.Step(ClearMsg{})

	// Then only the shape list changes; started and bounds survive
	req.Empty(cmds)
	req.Empty(next.Shapes)
	req.True(next.Started)
	req.Equal(s.Canvas, next.Canvas)
	req.Equal(s.MinSide, next.MinSide)
	req.Equal(s.MaxSide, next.MaxSide)
}

func TestStudio_SetWidth_ClampsToCeiling(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	next, _ := s.Step(SetWidthMsg{Raw: "99999"})
	req.Equal(s.MaxWidth, next.Canvas.Width)

	// No lower bound: zero and negative widths are allowed
	next, _ = s.Step(SetWidthMsg{Raw: "-10"})
	req.Equal(-10.0, next.Canvas.Width)
}

func TestStudio_SetWidth_Idempotent(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	once, _ := s.Step(SetWidthMsg{Raw: "99999"})
	twice, _ := once.Step(SetWidthMsg{Raw: "99999"})

	req.Equal(once.Canvas.Width, twice.Canvas.Width)
}

func TestStudio_SetHeight_ClampsToCeiling(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	next, _ := s.Step(SetHeightMsg{Raw: "5000"})
	req.Equal(s.MaxHeight, next.Canvas.Height)
}

func TestStudio_UnparseableInputKeepsPreviousValue(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	for _, raw := range []string{"", "abc", "12..5", "1e", "--3"} {
		next, cmds := s.Step(SetWidthMsg{Raw: raw})
		req.Empty(cmds)
		req.Equal(s.Canvas.Width, next.Canvas.Width, "raw %q", raw)
	}
}

func TestStudio_SetMinSide_Clamps(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	next, _ := s.Step(SetMinSideMsg{Raw: "-4"})
	req.Equal(0.0, next.MinSide)

	next, _ = s.Step(SetMinSideMsg{Raw: "500"})
	req.Equal(s.MaxSide, next.MinSide)
}

func TestStudio_SetMaxSide_Clamps(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	// Cannot exceed the canvas height
	next, _ := s.Step(SetMaxSideMsg{Raw: "5000"})
	req.Equal(s.Canvas.Height, next.MaxSide)

	// Cannot go below the current minimum
	next, _ = s.Step(SetMaxSideMsg{Raw: "1"})
	req.Equal(s.MinSide, next.MaxSide)
}

func TestStudio_MinAboveMaxThenMaxBelowMin_NeverCrosses(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	// Given the minimum is raised above the current maximum
	s, _ = s.Step(SetMinSideMsg{Raw: "400"})
	req.Equal(150.0, s.MinSide) // clamped to maxSide
	req.Equal(s.MinSide, s.MaxSide)

	// When the maximum is then lowered below the shared value
	s, _ = s.Step(SetMaxSideMsg{Raw: "50"})

	// Then the maximum clamps up to the minimum; the bounds never cross
	req.Equal(150.0, s.MaxSide)
	req.Equal(s.MinSide, s.MaxSide)
	req.LessOrEqual(s.MinSide, s.MaxSide)
}

func TestStudio_EditOrderAffectsAchievableRange(t *testing.T) {
	req := require.New(t)
	s := newTestStudio()

	// Lowering maxSide first limits how high minSide can later go
	s, _ = s.Step(SetMaxSideMsg{Raw: "60"})
	s, _ = s.Step(SetMinSideMsg{Raw: "100"})
	req.Equal(60.0, s.MinSide)
	req.Equal(60.0, s.MaxSide)
}
