package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Field identifies one of the editable numeric inputs.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldMinSide
	FieldMaxSide
	fieldCount
)

var fieldLabels = map[Field]string{
	FieldWidth:   "Width",
	FieldHeight:  "Height",
	FieldMinSide: "Minimum Side",
	FieldMaxSide: "Maximum Side",
}

var (
	controlsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#585858", Dark: "#9a9a9a"})

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
			Background(lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#3a3a4a"})
)

// ControlsPane is the studio's panel of editable inputs plus the
// start/stop and clear actions. Inputs hold whatever the user typed; the
// model keeps the clamped values, so the two may disagree while editing.
type ControlsPane struct {
	inputs  [fieldCount]textinput.Model
	focused int // index into inputs, -1 when no field has focus
	width   int
}

func NewControlsPane() *ControlsPane {
	p := &ControlsPane{focused: -1}
	for f := Field(0); f < fieldCount; f++ {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 8
		ti.Width = 10
		p.inputs[f] = ti
	}
	return p
}

// SeedValues fills the inputs with the model's current numbers. Used once
// at startup; afterwards the inputs belong to the user.
func (p *ControlsPane) SeedValues(width, height, minSide, maxSide float64) {
	p.inputs[FieldWidth].SetValue(formatField(width))
	p.inputs[FieldHeight].SetValue(formatField(height))
	p.inputs[FieldMinSide].SetValue(formatField(minSide))
	p.inputs[FieldMaxSide].SetValue(formatField(maxSide))
}

func formatField(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Focused reports whether any input currently has focus.
func (p *ControlsPane) Focused() bool {
	return p.focused >= 0
}

// CurrentField returns the focused field; only meaningful when Focused.
func (p *ControlsPane) CurrentField() Field {
	return Field(p.focused)
}

// Value returns the raw text of a field.
func (p *ControlsPane) Value(f Field) string {
	return p.inputs[f].Value()
}

// FocusNext moves focus to the next field, wrapping around.
func (p *ControlsPane) FocusNext() tea.Cmd {
	return p.focus((p.focused + 1) % int(fieldCount))
}

// FocusPrev moves focus to the previous field, wrapping around.
func (p *ControlsPane) FocusPrev() tea.Cmd {
	next := p.focused - 1
	if next < 0 {
		next = int(fieldCount) - 1
	}
	return p.focus(next)
}

func (p *ControlsPane) focus(idx int) tea.Cmd {
	if p.focused >= 0 {
		p.inputs[p.focused].Blur()
	}
	p.focused = idx
	return p.inputs[idx].Focus()
}

// Blur removes focus from all fields.
func (p *ControlsPane) Blur() {
	if p.focused >= 0 {
		p.inputs[p.focused].Blur()
	}
	p.focused = -1
}

func (p *ControlsPane) SetWidth(width int) {
	p.width = width
}

// Update forwards a message to the focused input.
func (p *ControlsPane) Update(msg tea.Msg) tea.Cmd {
	if p.focused < 0 {
		return nil
	}
	var cmd tea.Cmd
	p.inputs[p.focused], cmd = p.inputs[p.focused].Update(msg)
	return cmd
}

// String renders the panel. The start/stop button label follows the
// running state.
func (p *ControlsPane) String(started bool) string {
	rows := []string{controlsTitleStyle.Render("Controls"), ""}
	for f := Field(0); f < fieldCount; f++ {
		rows = append(rows,
			fieldLabelStyle.Render(fieldLabels[f]),
			p.inputs[f].View(),
		)
	}

	toggleLabel := "[s] Start"
	if started {
		toggleLabel = "[s] Stop"
	}
	rows = append(rows, "",
		buttonStyle.Render(toggleLabel),
		buttonStyle.Render("[c] Clear canvas"),
	)

	panel := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if p.width > 0 {
		panel = lipgloss.NewStyle().Width(p.width).Render(panel)
	}
	return panel
}
