package ui

import (
	"fmt"
	"strings"

	"shape-studio/services/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#585858", Dark: "#9a9a9a"})

	statusRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#73D216"))

	statusStoppedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CC0000"))
)

// StatusBar is the one-line summary under the canvas.
type StatusBar struct {
	width int
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// String renders the bar. spin is the current spinner frame, shown only
// while running.
func (s *StatusBar) String(running bool, spin string, canvas types.Canvas, shapeCount int) string {
	var state string
	if running {
		state = statusRunningStyle.Render(spin + " spawning")
	} else {
		state = statusStoppedStyle.Render("stopped")
	}

	parts := []string{
		state,
		fmt.Sprintf("%d shapes", shapeCount),
		fmt.Sprintf("canvas %.0fx%.0f", canvas.Width, canvas.Height),
	}

	line := statusBarStyle.Render(strings.Join(parts, "  ·  "))
	if s.width > 0 {
		line = lipgloss.NewStyle().Width(s.width).Render(line)
	}
	return line
}
