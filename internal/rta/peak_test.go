package rta

import (
	"math"
	"testing"
)

func values(vs ...float64) []Band {
	bands := make([]Band, len(vs))
	for i, v := range vs {
		bands[i] = NewBand(v, 100*(i+1))
	}
	return bands
}

func TestFindPeak(t *testing.T) {
	peak, ok := FindPeak(values(0.2, 0.9, 0.5))
	if !ok {
		t.Fatal("expected a peak")
	}
	if peak.Value != 0.9 || peak.Hz() != 200 {
		t.Fatalf("expected the 0.9 band at 200 Hz, got %v at %d Hz", peak.Value, peak.Hz())
	}
}

func TestFindPeakTieGoesToFirstBand(t *testing.T) {
	peak, ok := FindPeak(values(0.5, 0.5, 0.5))
	if !ok {
		t.Fatal("expected a peak")
	}
	if peak.Hz() != 100 {
		t.Fatalf("expected the first band to win a tie, got %d Hz", peak.Hz())
	}
}

func TestFindPeakEmptyAndNaN(t *testing.T) {
	if _, ok := FindPeak(nil); ok {
		t.Fatal("expected no peak for an empty list")
	}
	if _, ok := FindPeak(values(math.NaN())); ok {
		t.Fatal("expected no peak when every value is NaN")
	}
	peak, _ := FindPeak(values(math.NaN(), 0.1))
	if peak.Value != 0.1 {
		t.Fatalf("expected NaN to be skipped, got %v", peak.Value)
	}
	if floor := FloorBand(); floor.Value != 0 || floor.Hz() != 0 {
		t.Fatalf("unexpected floor band %+v", floor)
	}
}

func TestFindPeakReturnsCopy(t *testing.T) {
	bands := values(0.3, 0.7)
	peak, _ := FindPeak(bands)
	peak.Value = 0
	if bands[1].Value != 0.7 {
		t.Fatal("expected FindPeak to return a copy")
	}
}

func TestHighlightPeak(t *testing.T) {
	bands := values(0.2, 0.9, 0.5)
	if i := HighlightPeak(bands, DefaultPeakColor); i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}
	if bands[1].Color != DefaultPeakColor {
		t.Fatalf("expected peak recolored, got %v", bands[1].Color)
	}
	if bands[0].Color != DefaultBandColor || bands[2].Color != DefaultBandColor {
		t.Fatal("expected other bands untouched")
	}
	if i := HighlightPeak(nil, DefaultPeakColor); i != -1 {
		t.Fatalf("expected -1 for no bands, got %d", i)
	}
}
