package ui

import (
	"strings"

	"shape-studio/services/types"

	"github.com/charmbracelet/lipgloss"
)

// cellWidth is how many terminal columns one raster cell occupies. Two
// columns roughly square a cell against the character aspect ratio.
const cellWidth = 2

var (
	backgroundStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1A1B26"))

	shapeStyles = map[types.Colour]lipgloss.Style{
		types.Red:    lipgloss.NewStyle().Background(lipgloss.Color(types.Red.Hex())),
		types.Blue:   lipgloss.NewStyle().Background(lipgloss.Color(types.Blue.Hex())),
		types.Green:  lipgloss.NewStyle().Background(lipgloss.Color(types.Green.Hex())),
		types.Yellow: lipgloss.NewStyle().Background(lipgloss.Color(types.Yellow.Hex())),
	}

	emptyCanvasStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})
)

// Rasterize maps a canvas and its shapes onto a cols x rows cell grid.
// Cells hold the colour of the shape covering them, nil meaning background.
//
// Shapes are painted in list order (newest first), each paint overwriting
// what is already in the grid. That reproduces the source drawing order:
// the list is drawn front to back without reversal, so the oldest shape
// ends up topmost.
func Rasterize(canvas types.Canvas, shapes []types.Shape, cols, rows int) [][]*types.Colour {
	grid := make([][]*types.Colour, rows)
	for r := range grid {
		grid[r] = make([]*types.Colour, cols)
	}
	if cols == 0 || rows == 0 || canvas.Width <= 0 || canvas.Height <= 0 {
		return grid
	}

	cellW := canvas.Width / float64(cols)
	cellH := canvas.Height / float64(rows)

	for _, s := range shapes {
		// Extent from the shape's center: half a side for squares, the
		// radius for circles.
		extent := s.Size
		if s.Geometry == types.Square {
			extent = s.Size / 2
		}

		minCol := clampCell(int((s.X-extent+canvas.Width/2)/cellW), cols)
		maxCol := clampCell(int((s.X+extent+canvas.Width/2)/cellW), cols)
		minRow := clampCell(int((s.Y-extent+canvas.Height/2)/cellH), rows)
		maxRow := clampCell(int((s.Y+extent+canvas.Height/2)/cellH), rows)

		for r := minRow; r <= maxRow; r++ {
			for c := minCol; c <= maxCol; c++ {
				cx := (float64(c)+0.5)*cellW - canvas.Width/2
				cy := (float64(r)+0.5)*cellH - canvas.Height/2
				if s.Covers(cx, cy) {
					colour := s.Colour
					grid[r][c] = &colour
				}
			}
		}
	}

	return grid
}

func clampCell(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// CanvasPane renders the shape canvas into a fixed region of the screen.
type CanvasPane struct {
	width  int
	height int
}

func NewCanvasPane() *CanvasPane {
	return &CanvasPane{}
}

func (p *CanvasPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Cells returns the raster dimensions the pane currently renders at.
func (p *CanvasPane) Cells() (cols, rows int) {
	return p.width / cellWidth, p.height
}

// Render returns the canvas as styled rows of cells. A degenerate canvas
// (zero or negative dimensions) renders as a placeholder message.
func (p *CanvasPane) Render(canvas types.Canvas, shapes []types.Shape) string {
	cols, rows := p.Cells()
	if cols <= 0 || rows <= 0 {
		return ""
	}

	if canvas.Width <= 0 || canvas.Height <= 0 {
		return emptyCanvasStyle.
			Width(p.width).
			Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("canvas has no area")
	}

	grid := Rasterize(canvas, shapes, cols, rows)

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderRow(row))
	}
	return b.String()
}

// renderRow joins a row of cells into styled runs so each colour change
// costs one escape sequence instead of one per cell.
func renderRow(row []*types.Colour) string {
	var b strings.Builder
	runStart := 0
	for c := 1; c <= len(row); c++ {
		if c < len(row) && sameColour(row[c], row[runStart]) {
			continue
		}
		b.WriteString(styleFor(row[runStart]).Render(strings.Repeat(" ", (c-runStart)*cellWidth)))
		runStart = c
	}
	return b.String()
}

func sameColour(a, b *types.Colour) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func styleFor(c *types.Colour) lipgloss.Style {
	if c == nil {
		return backgroundStyle
	}
	return shapeStyles[*c]
}
