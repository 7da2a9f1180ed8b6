package rta

// Glyph is one of the nine fill levels of a cell, in eighths.
type Glyph uint8

// Fill levels from an empty cell to a full block.
const (
	GlyphEmpty Glyph = iota // blank cell, not drawn
	GlyphOneEighth
	GlyphOneQuarter
	GlyphThreeEighths
	GlyphHalf
	GlyphFiveEighths
	GlyphThreeQuarters
	GlyphSevenEighths
	GlyphFull // █
)

var glyphSymbols = [...]string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// String returns the block character for g.
func (g Glyph) String() string {
	if int(g) >= len(glyphSymbols) {
		return glyphSymbols[GlyphFull]
	}
	return glyphSymbols[g]
}

// PartialGlyph quantizes the fractional fill of the top cell of a bar down to
// the nearest eighth. Fractions under 1/8 give GlyphEmpty, meaning the cell
// is not drawn at all.
func PartialGlyph(fraction float64) Glyph {
	switch f := fraction; {
	case f >= 7.0/8.0:
		return GlyphSevenEighths
	case f >= 3.0/4.0:
		return GlyphThreeQuarters
	case f >= 5.0/8.0:
		return GlyphFiveEighths
	case f >= 1.0/2.0:
		return GlyphHalf
	case f >= 3.0/8.0:
		return GlyphThreeEighths
	case f >= 1.0/4.0:
		return GlyphOneQuarter
	case f >= 1.0/8.0:
		return GlyphOneEighth
	default:
		return GlyphEmpty
	}
}
