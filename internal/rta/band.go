// Package rta renders a real-time analyzer meter: one vertical bar per
// frequency band, a dB scale on the left, a frequency scale underneath and an
// optional peak readout on top.
package rta

import "github.com/charmbracelet/lipgloss"

var (
	DefaultBandColor = lipgloss.Color("3") // yellow
	DefaultPeakColor = lipgloss.Color("1") // red
	DefaultAxisColor = lipgloss.Color("7") // white
)

// Band is one frequency bin of the meter for a single frame.
type Band struct {
	// Value is the bar height as a ratio, 1.0 being full scale. It is not
	// clamped on assignment; rendering clamps it.
	Value float64
	// Frequency is the label shown on the frequency axis, in Hz. Nil
	// renders as 0.
	Frequency *int
	Color     lipgloss.TerminalColor
}

// NewBand returns a band in the default color labelled with hz.
func NewBand(value float64, hz int) Band {
	return Band{Value: value, Frequency: &hz, Color: DefaultBandColor}
}

// SetRatio sets the bar height directly.
func (b *Band) SetRatio(ratio float64) {
	b.Value = ratio
}

// SetDB sets the bar height from a level in dB relative to full scale.
func (b *Band) SetDB(db, minDB float64) {
	b.Value = DBToRatio(db, minDB)
}

// DB returns the bar height as a level in dB.
func (b Band) DB(minDB float64) float64 {
	return RatioToDB(b.Value, minDB)
}

// Hz returns the band frequency, or 0 when it has none.
func (b Band) Hz() int {
	if b.Frequency == nil {
		return 0
	}
	return *b.Frequency
}
