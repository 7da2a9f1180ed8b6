package rta

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatFrequency renders a frequency label: 440 -> "440", 1000 -> "1k",
// 16000 -> "16k".
func FormatFrequency(hz int) string {
	v, prefix := humanize.ComputeSI(float64(hz))
	return fmt.Sprintf("%.0f%s", v, prefix)
}

// FormatDB renders a scale label in whole decibels.
func FormatDB(db float64) string {
	r := math.Round(db)
	if r == 0 {
		return "0"
	}
	return fmt.Sprintf("%.0f", r)
}
