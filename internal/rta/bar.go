package rta

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rtameter/internal/grid"
)

// RenderBar fills a bar of the given width bottom-up inside area: whole cells
// with GlyphFull, then one partial glyph for the remainder. Cells above the
// bar are left as they are. It returns the number of cells written.
func RenderBar(buf *grid.Buffer, value float64, area grid.Rect, width int, fg lipgloss.TerminalColor) int {
	area = area.Intersect(buf.Area())
	width = min(width, area.Width)
	if area.IsEmpty() || width <= 0 {
		return 0
	}

	value = clamp01(value)
	scaled := value * float64(area.Height)
	full := int(math.Floor(scaled))
	fraction := scaled - float64(full)
	full = min(full, area.Height)

	written := 0
	for i := 0; i < full; i++ {
		y := area.Bottom() - 1 - i
		for x := 0; x < width; x++ {
			if buf.Set(area.Left()+x, y, GlyphFull.String(), fg) {
				written++
			}
		}
	}

	partial := PartialGlyph(fraction)
	if partial == GlyphEmpty || full >= area.Height {
		return written
	}
	y := area.Bottom() - 1 - full
	for x := 0; x < width; x++ {
		if buf.Set(area.Left()+x, y, partial.String(), fg) {
			written++
		}
	}
	return written
}
