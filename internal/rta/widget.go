package rta

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rtameter/internal/grid"
)

// RTA describes one frame of the meter. Build it fresh for every redraw; it
// keeps no state between frames.
type RTA struct {
	Bands []Band
	// MinDB is the level drawn as an empty bar. Values >= 0 fall back to
	// DefaultMinDB.
	MinDB          float64
	ShowPeakLabels bool
	HighlightPeak  bool
	PeakColor      lipgloss.TerminalColor
	AxisColor      lipgloss.TerminalColor
	LabelColor     lipgloss.TerminalColor
	// Frame, when set, is drawn around the meter and the meter renders
	// inside its interior.
	Frame *grid.Frame
}

// New returns a meter over bands with peak labels enabled.
func New(bands []Band, minDB float64) RTA {
	return RTA{
		Bands:          bands,
		MinDB:          minDB,
		ShowPeakLabels: true,
		PeakColor:      DefaultPeakColor,
		AxisColor:      DefaultAxisColor,
	}
}

// WithFrame surrounds the meter with f. Styles on the frame do not affect
// the meter itself.
func (r RTA) WithFrame(f grid.Frame) RTA {
	r.Frame = &f
	return r
}

// WithPeakLabels shows or hides the peak readout above the plot.
func (r RTA) WithPeakLabels(show bool) RTA {
	r.ShowPeakLabels = show
	return r
}

// WithPeakHighlight recolors the loudest band with PeakColor when rendered.
func (r RTA) WithPeakHighlight(on bool) RTA {
	r.HighlightPeak = on
	return r
}

// WithAxisColor sets the color of the axis rules.
func (r RTA) WithAxisColor(c lipgloss.TerminalColor) RTA {
	r.AxisColor = c
	return r
}

// WithLabelColor sets the color of the scale labels and the peak readout.
func (r RTA) WithLabelColor(c lipgloss.TerminalColor) RTA {
	r.LabelColor = c
	return r
}

func (r RTA) minDB() float64 {
	if r.MinDB < 0 {
		return max(r.MinDB, LowestMinDB)
	}
	return DefaultMinDB
}

// Render draws the meter into buf within area. Nothing outside area or the
// buffer is touched, and nothing is cleared first. An area with no room
// left inside the frame is not an error and draws at most the frame; an
// empty band list otherwise is.
//
// When the bands do not all fit, the peak readout and highlight only
// consider the bands that are drawn.
func (r RTA) Render(area grid.Rect, buf *grid.Buffer) error {
	inner := area
	if r.Frame != nil {
		inner = r.Frame.Inner(area)
	}
	inner = inner.Intersect(buf.Area())
	if inner.IsEmpty() {
		if r.Frame != nil && len(r.Bands) > 0 {
			r.Frame.Render(area, buf)
		}
		return nil
	}
	if len(r.Bands) == 0 {
		return ErrNoBands
	}

	minDB := r.minDB()
	l, err := ComputeLayout(inner, len(r.Bands), r.ShowPeakLabels, minDB)
	if err != nil {
		return err
	}
	if r.Frame != nil {
		r.Frame.Render(area, buf)
	}

	bands := slices.Clone(r.Bands)
	shown := bands
	if !l.PlotArea.IsEmpty() {
		shown = bands[:len(l.BarAreas)]
	}
	if r.HighlightPeak {
		HighlightPeak(shown, r.PeakColor)
	}
	if r.ShowPeakLabels {
		renderPeakLabels(buf, l.PeakArea, shown, minDB, r.LabelColor)
	}
	if l.PlotArea.IsEmpty() {
		return nil
	}

	axisFrame(r.AxisColor).Render(l.AxisArea, buf)
	renderDBScale(buf, l, minDB, r.LabelColor)
	renderFreqScale(buf, l, bands, r.LabelColor)

	for i, a := range l.BarAreas {
		RenderBar(buf, bands[i].Value, a, l.BarWidth, bands[i].Color)
	}
	return nil
}
