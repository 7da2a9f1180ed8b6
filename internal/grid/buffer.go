package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Blank is the symbol of an untouched cell.
const Blank = " "

// Cell is one character position: a symbol and its foreground color.
// A nil Fg means the terminal default. An empty Symbol marks the trailing
// half of a double-width rune and is skipped on output.
type Cell struct {
	Symbol string
	Fg     lipgloss.TerminalColor
}

func blankCell() Cell {
	return Cell{Symbol: Blank}
}

// Buffer is a rectangular grid of cells addressed in absolute coordinates.
type Buffer struct {
	area  Rect
	cells []Cell
}

// NewBuffer allocates a blank buffer covering area.
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{area: area, cells: make([]Cell, area.Area())}
	b.Reset()
	return b
}

// Area returns the rectangle the buffer covers.
func (b *Buffer) Area() Rect { return b.area }

// Reset blanks every cell.
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = blankCell()
	}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

// Cell returns the cell at (x, y), or nil when it lies outside the buffer.
func (b *Buffer) Cell(x, y int) *Cell {
	i, ok := b.index(x, y)
	if !ok {
		return nil
	}
	return &b.cells[i]
}

// Set writes a symbol and color at (x, y). Writes outside the buffer are
// dropped and reported as false.
func (b *Buffer) Set(x, y int, symbol string, fg lipgloss.TerminalColor) bool {
	i, ok := b.index(x, y)
	if !ok {
		return false
	}
	b.cells[i] = Cell{Symbol: symbol, Fg: fg}
	return true
}

// SetFg recolors the cell at (x, y) without touching its symbol.
func (b *Buffer) SetFg(x, y int, fg lipgloss.TerminalColor) bool {
	c := b.Cell(x, y)
	if c == nil {
		return false
	}
	c.Fg = fg
	return true
}

// Lines returns the symbols of each row without any styling.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.area.Height)
	for row := 0; row < b.area.Height; row++ {
		var sb strings.Builder
		start := row * b.area.Width
		for _, c := range b.cells[start : start+b.area.Width] {
			sb.WriteString(c.Symbol)
		}
		lines[row] = sb.String()
	}
	return lines
}

// String renders the buffer as newline-separated rows, coloring runs of
// cells that share a foreground through lipgloss.
func (b *Buffer) String() string {
	rows := make([]string, b.area.Height)
	for row := 0; row < b.area.Height; row++ {
		var line, run strings.Builder
		var runFg lipgloss.TerminalColor
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runFg == nil {
				line.WriteString(run.String())
			} else {
				line.WriteString(lipgloss.NewStyle().Foreground(runFg).Render(run.String()))
			}
			run.Reset()
		}

		start := row * b.area.Width
		for _, c := range b.cells[start : start+b.area.Width] {
			if c.Symbol == "" {
				continue
			}
			if c.Fg != runFg {
				flush()
				runFg = c.Fg
			}
			run.WriteString(c.Symbol)
		}
		flush()
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}
