// Package tui renders a layout as character cells in the terminal and
// re-runs the engine whenever the terminal is resized, which makes
// weighted rows/columns and fill/expand behavior directly observable.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// One terminal cell stands for this many layout pixels. 8x16 keeps the
// usual 1:2 glyph aspect ratio, so previews are not stretched.
const (
	cellWidth  = 8
	cellHeight = 16
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the bubbletea model for the interactive preview.
type Model struct {
	engine *layout.LayoutEngine
	root   *widget.Widget

	width  int
	height int
	rects  map[string]layout.Rect
	err    error
}

// New returns a preview of root laid out by engine. The first layout
// happens on the initial WindowSizeMsg.
func New(engine *layout.LayoutEngine, root *widget.Widget) Model {
	return Model{engine: engine, root: root}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// relayout maps the drawable terminal area (minus header and footer)
// to pixels and recomputes every rectangle.
func (m *Model) relayout() {
	cols, rows := m.canvasCells()
	if cols <= 0 || rows <= 0 {
		m.rects = nil
		return
	}
	rects, err := m.engine.Layout(m.root, float64(cols*cellWidth), float64(rows*cellHeight))
	m.rects, m.err = rects, err
}

func (m Model) canvasCells() (cols, rows int) {
	return m.width, m.height - 2
}

func (m Model) View() string {
	title := m.root.Title
	if title == "" {
		title = m.root.ID
	}
	cols, rows := m.canvasCells()
	header := titleStyle.Render(fmt.Sprintf("%s — %dx%d px", title, cols*cellWidth, rows*cellHeight))
	footer := helpStyle.Render("resize the terminal to re-layout · q quits")
	if m.err != nil {
		return header + "\n" + errStyle.Render(m.err.Error()) + "\n" + footer
	}
	if m.rects == nil {
		return header + "\n" + footer
	}
	return header + "\n" + m.renderCanvas(cols, rows) + footer
}

func (m Model) renderCanvas(cols, rows int) string {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	m.root.Walk(func(w *widget.Widget) {
		r, ok := m.rects[w.ID]
		if !ok {
			return
		}
		drawBox(grid, r, w.Text)
	})
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func drawBox(grid [][]rune, r layout.Rect, label string) {
	x := int(math.Round(r.X / cellWidth))
	y := int(math.Round(r.Y / cellHeight))
	w := int(math.Round(r.Width / cellWidth))
	h := int(math.Round(r.Height / cellHeight))
	if w < 2 || h < 1 {
		return
	}
	if h == 1 {
		// Too flat for a border; draw the label in a single row.
		putString(grid, x, y, "["+clip(label, w-2)+"]")
		return
	}
	for cx := x; cx < x+w; cx++ {
		putRune(grid, cx, y, '─')
		putRune(grid, cx, y+h-1, '─')
	}
	for cy := y; cy < y+h; cy++ {
		putRune(grid, x, cy, '│')
		putRune(grid, x+w-1, cy, '│')
	}
	putRune(grid, x, y, '┌')
	putRune(grid, x+w-1, y, '┐')
	putRune(grid, x, y+h-1, '└')
	putRune(grid, x+w-1, y+h-1, '┘')
	if label != "" {
		text := clip(label, w-2)
		putString(grid, x+(w-len([]rune(text)))/2, y+h/2, text)
	}
}

func putRune(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func putString(grid [][]rune, x, y int, s string) {
	for i, r := range []rune(s) {
		putRune(grid, x+i, y, r)
	}
}

func clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max == 1 {
		return string(rs[:1])
	}
	return string(rs[:max-1]) + "…"
}
