package grid

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Draw copies every cell of the buffer onto s at the same coordinates.
// The caller still owns Show/Sync.
func (b *Buffer) Draw(s tcell.Screen) {
	for row := 0; row < b.area.Height; row++ {
		for col := 0; col < b.area.Width; col++ {
			c := b.cells[row*b.area.Width+col]
			if c.Symbol == "" {
				continue
			}
			runes := []rune(c.Symbol)
			style := tcell.StyleDefault.Foreground(TcellColor(c.Fg))
			s.SetContent(b.area.X+col, b.area.Y+row, runes[0], runes[1:], style)
		}
	}
}

// TcellColor maps a lipgloss color onto the closest tcell color. Adaptive
// colors resolve to their dark variant.
func TcellColor(c lipgloss.TerminalColor) tcell.Color {
	switch v := c.(type) {
	case nil:
		return tcell.ColorDefault
	case lipgloss.Color:
		return colorFromString(string(v))
	case lipgloss.ANSIColor:
		return tcell.PaletteColor(int(v))
	case lipgloss.AdaptiveColor:
		return colorFromString(v.Dark)
	case lipgloss.CompleteColor:
		switch {
		case v.TrueColor != "":
			return colorFromString(v.TrueColor)
		case v.ANSI256 != "":
			return colorFromString(v.ANSI256)
		default:
			return colorFromString(v.ANSI)
		}
	default:
		return tcell.ColorDefault
	}
}

func colorFromString(s string) tcell.Color {
	if s == "" {
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}
