package grid

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Alignment positions a line of text horizontally inside its area.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TextWidth is the number of cells s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// DrawText writes a single line of text on the top row of area, truncated to
// the area width and aligned within it. It returns the rectangle actually
// covered by the text.
func DrawText(buf *Buffer, area Rect, text string, align Alignment, fg lipgloss.TerminalColor) Rect {
	if area.IsEmpty() || text == "" {
		return Rect{}
	}

	text = runewidth.Truncate(text, area.Width, "")
	w := runewidth.StringWidth(text)

	x := area.X
	switch align {
	case AlignCenter:
		x += (area.Width - w) / 2
	case AlignRight:
		x += area.Width - w
	}

	y := area.Y
	cx := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		buf.Set(cx, y, string(r), fg)
		if rw == 2 {
			buf.Set(cx+1, y, "", fg)
		}
		cx += rw
	}
	return NewRect(x, y, w, 1)
}
