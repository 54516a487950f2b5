package geom

import (
	"strconv"
	"strings"
)

type pathCommand uint8

const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Operation groups the basic path commands.
type Operation interface {
	command() pathCommand
}

type MoveTo Pt

type LineTo Pt

type QuadTo [2]Pt

type CubicTo [3]Pt

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic path operations,
// which should not be nil.
// Higher-level shapes are reduced to a path before drawing.
type Path []Operation

// FormatFloat returns the decimal representation of v used in
// the generated documents: rounded to three decimals, trailing
// zeros removed. The result only depends on v, so that encoding
// the same figure twice yields identical bytes.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func formatPt(p Pt) string {
	return FormatFloat(p.X) + "," + FormatFloat(p.Y)
}

// ToSVGPath returns the 'd' attribute representation of the path.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M" + formatPt(Pt(op))
		case LineTo:
			chunks[i] = "L" + formatPt(Pt(op))
		case QuadTo:
			chunks[i] = "Q" + formatPt(op[0]) + "," + formatPt(op[1])
		case CubicTo:
			chunks[i] = "C" + formatPt(op[0]) + "," + formatPt(op[1]) + "," + formatPt(op[2])
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice.
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Pt) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Pt) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Pt) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Pt) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop closes the path to the start point if closeLoop is true.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Transform returns a copy of the path with m applied
// to every control point.
func (p Path) Transform(m Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(m.Apply(Pt(op)))
		case LineTo:
			out[i] = LineTo(m.Apply(Pt(op)))
		case QuadTo:
			out[i] = QuadTo{m.Apply(op[0]), m.Apply(op[1])}
		case CubicTo:
			out[i] = CubicTo{m.Apply(op[0]), m.Apply(op[1]), m.Apply(op[2])}
		case Close:
			out[i] = op
		}
	}
	return out
}
