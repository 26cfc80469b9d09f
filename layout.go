package txt2braille

import (
	"fmt"
	"math"
)

// Default spacing, in millimetres for embossed or printed Braille.
const (
	DefaultDotSize        = 1.0  // radius of a rendered dot
	DefaultDotSeparation  = 2.5  // between dot centres within a cell
	DefaultCharSeparation = 6.0  // between cell origins on a line
	DefaultLineSeparation = 10.0 // between line origins
)

// Layout converts cells to dot coordinates. X grows to the right, Y grows
// upwards, so dots lower in a cell and later lines get more negative Y.
// The origin is the top-left dot of the first cell of line 0.
type Layout struct {
	DotSize        float64
	DotSeparation  float64
	CharSeparation float64
	LineSeparation float64
}

// LayoutOption is a functional option for configuring a Layout.
type LayoutOption func(*Layout)

// NewLayout returns a Layout with the default spacing and opts applied.
func NewLayout(opts ...LayoutOption) Layout {
	l := Layout{
		DotSize:        DefaultDotSize,
		DotSeparation:  DefaultDotSeparation,
		CharSeparation: DefaultCharSeparation,
		LineSeparation: DefaultLineSeparation,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// WithDotSize sets the rendered dot radius.
func WithDotSize(size float64) LayoutOption {
	return func(l *Layout) {
		l.DotSize = size
	}
}

// WithDotSeparation sets the distance between dot centres within a cell.
func WithDotSeparation(sep float64) LayoutOption {
	return func(l *Layout) {
		l.DotSeparation = sep
	}
}

// WithCharSeparation sets the distance between neighbouring cells.
func WithCharSeparation(sep float64) LayoutOption {
	return func(l *Layout) {
		l.CharSeparation = sep
	}
}

// WithLineSeparation sets the distance between lines.
func WithLineSeparation(sep float64) LayoutOption {
	return func(l *Layout) {
		l.LineSeparation = sep
	}
}

// DotPosition is the centre of one raised dot.
type DotPosition struct {
	Dot  int
	X, Y float64
}

// Dots returns the positions of the raised dots of p for a cell at column
// and line, in ascending dot order. Blank patterns yield no positions.
func (l Layout) Dots(p DotPattern, column, line int) []DotPosition {
	out := make([]DotPosition, 0, p.Count())
	for _, d := range p.Dots() {
		x, y := l.dotXY(d, column, line)
		out = append(out, DotPosition{Dot: d, X: x, Y: y})
	}
	return out
}

func (l Layout) dotXY(d, column, line int) (x, y float64) {
	x = l.CharSeparation*float64(column) + l.DotSeparation*float64(dotColumn(d))
	// 0 - v rather than -v keeps the top-left dot at +0, not -0
	y = 0 - (l.DotSeparation*float64(dotRow(d)) + l.LineSeparation*float64(line))
	return x, y
}

// DotPlacement is a positioned dot together with the cell it belongs to, so
// renderers can rebuild character and line groups from a flat list.
type DotPlacement struct {
	DotPosition
	Column    int
	Line      int
	Char      rune
	Indicator Indicator
}

// Label names the dot "dot_<line>_<column>_<dot>".
func (p DotPlacement) Label() string {
	return fmt.Sprintf("dot_%d_%d_%d", p.Line, p.Column, p.Dot)
}

// Cell places the dots of one encoded cell.
func (l Layout) Cell(c EncodedCell) []DotPlacement {
	positions := l.Dots(c.Dots, c.Column, c.Line)
	out := make([]DotPlacement, len(positions))
	for i, pos := range positions {
		out[i] = DotPlacement{
			DotPosition: pos,
			Column:      c.Column,
			Line:        c.Line,
			Char:        c.Char,
			Indicator:   c.Indicator,
		}
	}
	return out
}

// Line places every dot of an encoded line in column order.
func (l Layout) Line(el EncodedLine) []DotPlacement {
	var out []DotPlacement
	for _, c := range el.Cells {
		out = append(out, l.Cell(c)...)
	}
	return out
}

// Text places every dot of several encoded lines in line order.
func (l Layout) Text(lines []EncodedLine) []DotPlacement {
	var out []DotPlacement
	for _, el := range lines {
		out = append(out, l.Line(el)...)
	}
	return out
}

// Rect is an axis-aligned extent in layout units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Bounds returns the extent covered by all dot discs of lines, each dot
// extended by DotSize. ok is false when there are no raised dots.
func (l Layout) Bounds(lines []EncodedLine) (r Rect, ok bool) {
	r = Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range l.Text(lines) {
		r.MinX = math.Min(r.MinX, p.X-l.DotSize)
		r.MinY = math.Min(r.MinY, p.Y-l.DotSize)
		r.MaxX = math.Max(r.MaxX, p.X+l.DotSize)
		r.MaxY = math.Max(r.MaxY, p.Y+l.DotSize)
		ok = true
	}
	if !ok {
		return Rect{}, false
	}
	return r, true
}
