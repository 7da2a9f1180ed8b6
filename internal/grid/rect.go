// Package grid is a small character-cell canvas: rectangles, a cell buffer,
// aligned text and bordered frames. Widgets draw into a Buffer, which is then
// rendered as a styled string for bubbletea or blitted onto a tcell screen.
package grid

// Rect is an axis-aligned area of cells. Width and Height are never negative
// for rectangles produced by this package.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a rectangle, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area is the number of cells covered.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield an
// empty rectangle positioned at the clamped origin.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.Left(), o.Left())
	y0 := max(r.Top(), o.Top())
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// SplitTop cuts n rows off the top. n is clamped to the height.
func (r Rect) SplitTop(n int) (top, rest Rect) {
	n = clampInt(n, 0, r.Height)
	top = NewRect(r.X, r.Y, r.Width, n)
	rest = NewRect(r.X, r.Y+n, r.Width, r.Height-n)
	return top, rest
}

// SplitBottom cuts n rows off the bottom. n is clamped to the height.
func (r Rect) SplitBottom(n int) (rest, bottom Rect) {
	n = clampInt(n, 0, r.Height)
	rest = NewRect(r.X, r.Y, r.Width, r.Height-n)
	bottom = NewRect(r.X, r.Y+r.Height-n, r.Width, n)
	return rest, bottom
}

// SplitLeft cuts n columns off the left. n is clamped to the width.
func (r Rect) SplitLeft(n int) (left, rest Rect) {
	n = clampInt(n, 0, r.Width)
	left = NewRect(r.X, r.Y, n, r.Height)
	rest = NewRect(r.X+n, r.Y, r.Width-n, r.Height)
	return left, rest
}

// Inset shrinks r by the given amounts on each side, saturating at zero size.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	w := r.Width - left - right
	h := r.Height - top - bottom
	if w <= 0 || h <= 0 {
		return NewRect(r.X+min(left, r.Width), r.Y+min(top, r.Height), 0, 0)
	}
	return NewRect(r.X+left, r.Y+top, w, h)
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
