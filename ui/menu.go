package ui

import (
	"shape-studio/keys"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Menu is the key-hint line at the bottom of the screen.
type Menu struct {
	help  help.Model
	keys  keys.KeyMap
	width int
}

func NewMenu(keyMap keys.KeyMap) *Menu {
	return &Menu{
		help: help.New(),
		keys: keyMap,
	}
}

func (m *Menu) SetWidth(width int) {
	m.width = width
	m.help.Width = width
}

func (m *Menu) String() string {
	line := m.help.View(m.keys)
	if m.width > 0 {
		line = lipgloss.NewStyle().Width(m.width).Render(line)
	}
	return line
}
