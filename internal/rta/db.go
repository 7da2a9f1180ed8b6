package rta

import "math"

// DefaultMinDB is the floor used when a meter is built without one.
const DefaultMinDB = -60.0

// LowestMinDB is the deepest floor a meter renders. Its label is the widest
// the dB axis can hold; deeper floors are raised to it.
const LowestMinDB = -999.0

// DBToRatio maps a level in dB onto the visual ratio [0,1], where minDB maps
// to 0 and 0 dB maps to 1. Levels outside [minDB, 0] are clamped.
func DBToRatio(db, minDB float64) float64 {
	if math.IsNaN(db) || db <= minDB {
		return 0
	}
	if db >= 0 {
		return 1
	}
	if !(minDB < 0) {
		return 0
	}

	floorLog := math.Log10(math.Pow(10, minDB/20))
	ratio := (math.Log10(math.Pow(10, db/20)) - floorLog) / (0 - floorLog)
	return clamp01(ratio)
}

// RatioToDB is the inverse of DBToRatio. Ratios at or below zero return minDB
// without evaluating log10(0).
func RatioToDB(ratio, minDB float64) float64 {
	if !(minDB < 0) {
		return 0
	}
	if math.IsNaN(ratio) || ratio <= 0 {
		return minDB
	}
	if ratio >= 1 {
		return 0
	}

	floorLog := math.Log10(math.Pow(10, minDB/20))
	dbRatio := math.Pow(10, ratio*(0-floorLog)+floorLog)
	return 20 * math.Log10(dbRatio)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
