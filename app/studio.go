package app

import (
	"context"
	"fmt"
	"time"

	"shape-studio/keys"
	"shape-studio/services/scene"
	"shape-studio/services/types"
	"shape-studio/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunStudio is the entrypoint into the interactive studio variant
func RunStudio(ctx context.Context, deps *Dependencies) error {
	p := tea.NewProgram(
		newStudio(ctx, deps),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("studio exited: %w", err)
	}
	return nil
}

// Message types

// studioTickMsg fires once per spawn interval while started. run is the
// start/stop cycle it was scheduled under; a tick from a superseded run
// is stale even if the spawner has been started again since.
type studioTickMsg struct {
	run int
}

// shapeMsg carries a freshly generated shape back onto the message queue.
type shapeMsg struct {
	shape types.Shape
}

// studio is the Bubble Tea driver around the pure scene.Studio model. It
// maps terminal events to scene messages, executes the commands the
// transition requests and feeds results back as messages.
type studio struct {
	ctx  context.Context
	deps *Dependencies

	model scene.Studio

	// run counts start/stop cycles; only ticks stamped with the current
	// run may spawn and reschedule, so each start owns exactly one chain.
	run int

	// UI components
	canvas   *ui.CanvasPane
	controls *ui.ControlsPane
	status   *ui.StatusBar
	menu     *ui.Menu
	spinner  spinner.Model
	keys     keys.KeyMap
}

func newStudio(ctx context.Context, deps *Dependencies) *studio {
	cfg := deps.Config
	model := scene.NewStudio(
		types.Canvas{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight},
		cfg.MinSide,
		cfg.MaxSide,
	)

	keyMap := keys.Default()
	s := &studio{
		ctx:      ctx,
		deps:     deps,
		model:    model,
		canvas:   ui.NewCanvasPane(),
		controls: ui.NewControlsPane(),
		status:   ui.NewStatusBar(),
		menu:     ui.NewMenu(keyMap),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:     keyMap,
	}
	s.controls.SeedValues(model.Canvas.Width, model.Canvas.Height, model.MinSide, model.MaxSide)
	return s
}

func (s *studio) Init() tea.Cmd {
	// No spawn tick yet; ticking starts when the user starts the spawner.
	return s.spinner.Tick
}

// tick schedules the next spawn interval for the current run.
func (s *studio) tick() tea.Cmd {
	run := s.run
	interval := time.Duration(s.deps.Config.StudioTickMs) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return studioTickMsg{run: run}
	})
}

func (s *studio) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		s.handleWindowSize(msg)
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case studioTickMsg:
		// A tick scheduled before the spawner was stopped may still
		// arrive; it must neither spawn nor reschedule. The run stamp
		// also drops ticks from before a stop/start cycle, which would
		// otherwise fork a second tick chain.
		if !s.model.Started || msg.run != s.run {
			return s, nil
		}
		model, cmds := s.model.Step(scene.TickMsg{})
		s.model = model
		return s, tea.Batch(s.execute(cmds), s.tick())

	case shapeMsg:
		s.model, _ = s.model.Step(scene.ShapeMsg{Shape: msg.shape})
		s.deps.State.TotalSpawned++
		return s, nil
	}

	return s, nil
}

func (s *studio) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.NextField):
		return s, s.controls.FocusNext()

	case key.Matches(msg, s.keys.PrevField):
		return s, s.controls.FocusPrev()

	case key.Matches(msg, s.keys.Blur):
		s.controls.Blur()
		return s, nil
	}

	if s.controls.Focused() {
		// The focused input eats the keystroke, then its full text is
		// re-applied to the model: parse failures keep the previous
		// value, out-of-range values are clamped.
		cmd := s.controls.Update(msg)
		field := s.controls.CurrentField()
		s.model, _ = s.model.Step(fieldMsg(field, s.controls.Value(field)))
		return s, cmd
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit

	case key.Matches(msg, s.keys.Toggle):
		wasStarted := s.model.Started
		s.model, _ = s.model.Step(scene.ToggleMsg{})
		if !wasStarted && s.model.Started {
			s.run++
			return s, s.tick()
		}
		return s, nil

	case key.Matches(msg, s.keys.Clear):
		s.model, _ = s.model.Step(scene.ClearMsg{})
		return s, nil
	}

	return s, nil
}

// fieldMsg maps an edited input field to its scene message.
func fieldMsg(field ui.Field, raw string) scene.Msg {
	switch field {
	case ui.FieldWidth:
		return scene.SetWidthMsg{Raw: raw}
	case ui.FieldHeight:
		return scene.SetHeightMsg{Raw: raw}
	case ui.FieldMinSide:
		return scene.SetMinSideMsg{Raw: raw}
	default:
		return scene.SetMaxSideMsg{Raw: raw}
	}
}

// execute turns scene commands into Bubble Tea commands.
func (s *studio) execute(cmds []scene.Command) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case scene.GenerateCommand:
			bounds := c.Bounds
			out = append(out, func() tea.Msg {
				return shapeMsg{shape: s.deps.Generator.Generate(bounds)}
			})
		}
	}
	return tea.Batch(out...)
}

const controlsWidth = 24

func (s *studio) handleWindowSize(msg tea.WindowSizeMsg) {
	canvasWidth := msg.Width - controlsWidth
	if canvasWidth < 0 {
		canvasWidth = 0
	}
	contentHeight := msg.Height - 2 // status bar and menu

	s.canvas.SetSize(canvasWidth, contentHeight)
	s.controls.SetWidth(controlsWidth)
	s.status.SetWidth(msg.Width)
	s.menu.SetWidth(msg.Width)
}

func (s *studio) View() string {
	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.canvas.Render(s.model.Canvas, s.model.Shapes),
		s.controls.String(s.model.Started),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		s.status.String(s.model.Started, s.spinner.View(), s.model.Canvas, len(s.model.Shapes)),
		s.menu.String(),
	)
}
