package rta

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rtameter/internal/grid"
)

// ErrNoBands is returned when a meter is rendered without any bands; there is
// no meaningful bar width to lay out.
var ErrNoBands = errors.New("rta: no bands configured")

const peakLabelRows = 2

// Layout is the partition of a meter's area for one frame.
type Layout struct {
	PeakArea     grid.Rect // empty unless peak labels are shown
	DBAxisArea   grid.Rect
	FreqAxisArea grid.Rect
	PlotArea     grid.Rect

	// AxisArea is the part of PlotArea framed by the left and bottom rules.
	// It is exactly BarWidth*len(BarAreas)+1 columns wide so the frequency
	// labels line up with the last bar.
	AxisArea grid.Rect
	BarWidth int
	BarAreas []grid.Rect
}

// BarsArea is the region the bars are drawn in, inside the axis rules.
func (l Layout) BarsArea() grid.Rect {
	return axisFrame(nil).Inner(l.AxisArea)
}

// DBAxisWidth is 3 columns when the floor label fits in 3 cells, otherwise 4.
func DBAxisWidth(minDB float64) int {
	if grid.TextWidth(FormatDB(minDB)) <= 3 {
		return 3
	}
	return 4
}

// ComputeLayout splits area into the peak readout, the dB axis, the frequency
// axis and one column per band. Bands that cannot get at least one column
// are left out of BarAreas, starting from the right.
func ComputeLayout(area grid.Rect, bandCount int, showLabels bool, minDB float64) (Layout, error) {
	var l Layout
	if area.IsEmpty() {
		return l, nil
	}
	if bandCount <= 0 {
		return l, ErrNoBands
	}

	if showLabels {
		l.PeakArea, area = area.SplitTop(peakLabelRows)
	}

	left, right := area.SplitLeft(DBAxisWidth(minDB))
	// The dB axis stops one row short so its last label sits on the bottom rule.
	l.DBAxisArea, _ = left.SplitBottom(1)
	l.PlotArea, l.FreqAxisArea = right.SplitBottom(1)

	plot := l.PlotArea
	if plot.IsEmpty() {
		return l, nil
	}

	l.BarWidth = clampInt((plot.Width-1)/bandCount, 1, plot.Width)
	visible := min(bandCount, (plot.Width-1)/l.BarWidth)

	l.AxisArea = grid.NewRect(plot.X, plot.Y, l.BarWidth*visible+1, plot.Height)
	bars := l.BarsArea()
	l.BarAreas = make([]grid.Rect, visible)
	for i := 0; i < visible; i++ {
		l.BarAreas[i] = grid.NewRect(bars.X+i*l.BarWidth, bars.Y, l.BarWidth, bars.Height)
	}
	return l, nil
}

func axisFrame(color lipgloss.TerminalColor) grid.Frame {
	return grid.Frame{
		Borders:     grid.BorderLeft | grid.BorderBottom,
		Border:      lipgloss.NormalBorder(),
		BorderColor: color,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
