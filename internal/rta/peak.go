package rta

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// peakIndex returns the index of the loudest band, or -1. Ties go to the
// lowest index and NaN values never win.
func peakIndex(bands []Band) int {
	best := -1
	for i, b := range bands {
		if math.IsNaN(b.Value) {
			continue
		}
		if best < 0 || b.Value > bands[best].Value {
			best = i
		}
	}
	return best
}

// FindPeak returns a copy of the band with the highest value. It reports
// false when there is no candidate; callers fall back to FloorBand.
func FindPeak(bands []Band) (Band, bool) {
	i := peakIndex(bands)
	if i < 0 {
		return Band{}, false
	}
	return bands[i], true
}

// FloorBand stands in for the peak when a frame has nothing to report.
func FloorBand() Band {
	return Band{Value: 0, Color: DefaultBandColor}
}

// HighlightPeak recolors the loudest band in place and returns its index,
// or -1 when bands is empty.
func HighlightPeak(bands []Band, color lipgloss.TerminalColor) int {
	i := peakIndex(bands)
	if i >= 0 {
		bands[i].Color = color
	}
	return i
}
