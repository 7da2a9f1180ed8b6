package rta

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rtameter/internal/grid"
)

const dbLabelStep = 3

// ScaleLabel is one axis label: an offset along the axis and its text.
type ScaleLabel struct {
	Offset int
	Text   string
}

// LabelSpacing is how many bars apart regular frequency labels are placed.
// Narrow bars need wider spacing to leave room for the text.
func LabelSpacing(barWidth int) int {
	switch {
	case barWidth >= 5:
		return 2
	case barWidth >= 3:
		return 4
	default:
		return 6
	}
}

// DBScaleLabels returns the dB labels for a bar region rows tall. Offsets are
// rows from the top; offset rows is the bottom rule, which always carries the
// floor. Labels in between step every third row and are spread linearly from
// 0 dB down to the floor.
func DBScaleLabels(rows int, minDB float64) []ScaleLabel {
	var labels []ScaleLabel
	if rows > 0 {
		step := math.Abs(minDB) / float64(rows)
		for r := 0; rows-r >= 2; r += dbLabelStep {
			labels = append(labels, ScaleLabel{Offset: r, Text: FormatDB(0 - step*float64(r))})
		}
	}
	return append(labels, ScaleLabel{Offset: max(rows, 0), Text: FormatDB(minDB)})
}

// FreqScaleLabels returns the frequency labels for the first visible bands,
// with offsets in cells from the left edge of the first bar. The last visible
// band is always labelled, right-aligned to the end of its bar; regular labels
// that would run into it or into each other are dropped.
func FreqScaleLabels(bands []Band, barWidth, visible int) []ScaleLabel {
	visible = min(visible, len(bands))
	if visible <= 0 || barWidth <= 0 {
		return nil
	}

	span := barWidth * visible
	last := visible - 1
	finalText := FormatFrequency(bands[last].Hz())
	finalStart := max(span-grid.TextWidth(finalText), 0)

	var labels []ScaleLabel
	spacing := LabelSpacing(barWidth)
	nextFree := 0
	for i := 0; i < last; i += spacing {
		text := FormatFrequency(bands[i].Hz())
		start := i * barWidth
		end := start + grid.TextWidth(text)
		if start < nextFree || end >= finalStart {
			continue
		}
		labels = append(labels, ScaleLabel{Offset: start, Text: text})
		nextFree = end + 1
	}
	return append(labels, ScaleLabel{Offset: finalStart, Text: finalText})
}

func renderDBScale(buf *grid.Buffer, l Layout, minDB float64, fg lipgloss.TerminalColor) {
	axis := l.DBAxisArea
	if axis.IsEmpty() {
		return
	}
	rows := l.BarsArea().Height
	for _, label := range DBScaleLabels(rows, minDB) {
		if label.Offset >= axis.Height {
			continue
		}
		row := grid.NewRect(axis.X, axis.Y+label.Offset, axis.Width, 1)
		grid.DrawText(buf, row, label.Text, grid.AlignRight, fg)
	}
}

func renderFreqScale(buf *grid.Buffer, l Layout, bands []Band, fg lipgloss.TerminalColor) {
	if l.FreqAxisArea.IsEmpty() || len(l.BarAreas) == 0 {
		return
	}
	x0 := l.BarAreas[0].X
	span := l.BarWidth * len(l.BarAreas)
	row := grid.NewRect(x0, l.FreqAxisArea.Y, span, 1).Intersect(l.FreqAxisArea)
	for _, label := range FreqScaleLabels(bands, l.BarWidth, len(l.BarAreas)) {
		w := min(grid.TextWidth(label.Text), span-label.Offset)
		slot := grid.NewRect(x0+label.Offset, row.Y, w, 1).Intersect(row)
		grid.DrawText(buf, slot, label.Text, grid.AlignLeft, fg)
	}
}

func renderPeakLabels(buf *grid.Buffer, area grid.Rect, bands []Band, minDB float64, fg lipgloss.TerminalColor) {
	if area.IsEmpty() {
		return
	}
	peak, ok := FindPeak(bands)
	if !ok {
		peak = FloorBand()
	}

	dbRow, rest := area.SplitTop(1)
	bandRow, _ := rest.SplitTop(1)
	grid.DrawText(buf, dbRow, fmt.Sprintf("Peak: %.2fdB", peak.DB(minDB)), grid.AlignCenter, fg)
	grid.DrawText(buf, bandRow, fmt.Sprintf("Band: %dHz", peak.Hz()), grid.AlignCenter, fg)
}
