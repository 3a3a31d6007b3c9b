package app

import (
	"context"
	"fmt"
	"time"

	"shape-studio/keys"
	"shape-studio/services/scene"
	"shape-studio/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunGallery is the entrypoint into the capped gallery variant
func RunGallery(ctx context.Context, deps *Dependencies, maxShapes int) error {
	p := tea.NewProgram(
		newGallery(ctx, deps, maxShapes),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("gallery exited: %w", err)
	}
	return nil
}

// galleryTickMsg fires once per spawn interval until the cap is reached.
type galleryTickMsg struct{}

// gallery drives the pure scene.Gallery model. Once the model is full the
// tick chain is simply not rescheduled, which halts spawning for good.
type gallery struct {
	ctx  context.Context
	deps *Dependencies

	model scene.Gallery

	canvas  *ui.CanvasPane
	status  *ui.StatusBar
	menu    *ui.Menu
	spinner spinner.Model
	keys    keys.KeyMap
}

func newGallery(ctx context.Context, deps *Dependencies, maxShapes int) *gallery {
	if maxShapes <= 0 {
		maxShapes = deps.Config.GalleryMaxShapes
	}

	keyMap := keys.Default()
	return &gallery{
		ctx:     ctx,
		deps:    deps,
		model:   scene.NewGallery(deps.Generator.Seed(), maxShapes),
		canvas:  ui.NewCanvasPane(),
		status:  ui.NewStatusBar(),
		menu:    ui.NewMenu(keyMap),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:    keyMap,
	}
}

func (g *gallery) Init() tea.Cmd {
	return tea.Batch(g.spinner.Tick, g.tick())
}

func (g *gallery) tick() tea.Cmd {
	interval := time.Duration(g.deps.Config.GalleryTickMs) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return galleryTickMsg{}
	})
}

func (g *gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, g.keys.Quit) {
			return g, tea.Quit
		}
		return g, nil

	case tea.WindowSizeMsg:
		g.canvas.SetSize(msg.Width, msg.Height-2)
		g.menu.SetWidth(msg.Width)
		return g, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return g, cmd

	case galleryTickMsg:
		model, cmds := g.model.Step(scene.TickMsg{})
		g.model = model
		if g.model.Full() {
			// Cap reached: execute nothing further and let the tick
			// chain die. There is no way to resume in this variant.
			return g, g.execute(cmds)
		}
		return g, tea.Batch(g.execute(cmds), g.tick())

	case shapeMsg:
		g.model, _ = g.model.Step(scene.ShapeMsg{Shape: msg.shape})
		g.deps.State.TotalSpawned++
		return g, nil
	}

	return g, nil
}

func (g *gallery) execute(cmds []scene.Command) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case scene.GenerateCommand:
			bounds := c.Bounds
			out = append(out, func() tea.Msg {
				return shapeMsg{shape: g.deps.Generator.Generate(bounds)}
			})
		}
	}
	return tea.Batch(out...)
}

func (g *gallery) View() string {
	running := !g.model.Full()

	status := g.status.String(running, g.spinner.View(), g.model.Canvas, len(g.model.Shapes))
	seedLine := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#585858", Dark: "#9a9a9a"}).
		Render(fmt.Sprintf("  seed %d  ·  cap %d", g.model.Seed, g.model.MaxShapes))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		g.canvas.Render(g.model.Canvas, g.model.Shapes),
		status+seedLine,
		g.menu.String(),
	)
}
