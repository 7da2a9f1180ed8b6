package grid

import "github.com/charmbracelet/lipgloss"

// Borders selects which sides of a Frame are drawn.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Borders) Has(side Borders) bool { return b&side == side }

// Padding is blank space kept between a frame's borders and its interior.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Frame is a bordered, padded container. Its interior is what widgets draw into.
type Frame struct {
	Borders     Borders
	Border      lipgloss.Border // zero value means lipgloss.NormalBorder()
	BorderColor lipgloss.TerminalColor
	Title       string
	TitleColor  lipgloss.TerminalColor
	Padding     Padding
}

// BorderedFrame returns a frame with all four sides in the normal border set.
func BorderedFrame(title string) Frame {
	return Frame{Borders: BorderAll, Border: lipgloss.NormalBorder(), Title: title}
}

func (f Frame) border() lipgloss.Border {
	if f.Border == (lipgloss.Border{}) {
		return lipgloss.NormalBorder()
	}
	return f.Border
}

// Inner returns the part of area left after borders and padding. It may be empty.
func (f Frame) Inner(area Rect) Rect {
	top, right, bottom, left := f.Padding.Top, f.Padding.Right, f.Padding.Bottom, f.Padding.Left
	if f.Borders.Has(BorderTop) {
		top++
	}
	if f.Borders.Has(BorderRight) {
		right++
	}
	if f.Borders.Has(BorderBottom) {
		bottom++
	}
	if f.Borders.Has(BorderLeft) {
		left++
	}
	return area.Inset(top, right, bottom, left)
}

// Render draws the borders and title of f around area. Cells inside the
// interior are left untouched.
func (f Frame) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area())
	if area.IsEmpty() {
		return
	}

	b := f.border()
	left, right := area.Left(), area.Right()-1
	top, bottom := area.Top(), area.Bottom()-1

	if f.Borders.Has(BorderTop) {
		for x := left; x <= right; x++ {
			buf.Set(x, top, b.Top, f.BorderColor)
		}
	}
	if f.Borders.Has(BorderBottom) {
		for x := left; x <= right; x++ {
			buf.Set(x, bottom, b.Bottom, f.BorderColor)
		}
	}
	if f.Borders.Has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			buf.Set(left, y, b.Left, f.BorderColor)
		}
	}
	if f.Borders.Has(BorderRight) {
		for y := top; y <= bottom; y++ {
			buf.Set(right, y, b.Right, f.BorderColor)
		}
	}

	if f.Borders.Has(BorderTop | BorderLeft) {
		buf.Set(left, top, b.TopLeft, f.BorderColor)
	}
	if f.Borders.Has(BorderTop | BorderRight) {
		buf.Set(right, top, b.TopRight, f.BorderColor)
	}
	if f.Borders.Has(BorderBottom | BorderLeft) {
		buf.Set(left, bottom, b.BottomLeft, f.BorderColor)
	}
	if f.Borders.Has(BorderBottom | BorderRight) {
		buf.Set(right, bottom, b.BottomRight, f.BorderColor)
	}

	if f.Title != "" && f.Borders.Has(BorderTop) {
		x := left
		if f.Borders.Has(BorderLeft) {
			x++
		}
		w := right - x
		if !f.Borders.Has(BorderRight) {
			w++
		}
		titleFg := f.TitleColor
		if titleFg == nil {
			titleFg = f.BorderColor
		}
		DrawText(buf, NewRect(x, top, w, 1), f.Title, AlignLeft, titleFg)
	}
}
