package diagram

import (
	"fmt"

	"github.com/benoitkugler/diagrams/geom"
)

// Primitive is a drawable element of an Axes: a Point, a Vector or
// a Spline. Coordinates are axes-local and mapped to the document
// space when the owning figure is encoded, never before.
type Primitive interface {
	// Err returns the first configuration error recorded by a
	// setter, or nil.
	Err() error

	appendSVG(dst []string, m geom.Matrix2D) []string
	drawTo(d Driver, m geom.Matrix2D)
}

// label is an optional text annotation attached to a primitive.
type label struct {
	text   string
	offset geom.Pt // shift from the primitive anchor, document space
}

// base carries the state shared by all primitives.
type base struct {
	style Style
	label *label
	err   error
}

func (b *base) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first configuration error recorded by a setter,
// or nil.
func (b *base) Err() error { return b.err }

// setStyle validates and installs s; on failure the current style
// is kept and the error is recorded.
func (b *base) setStyle(s Style, fallback LinePattern) {
	s = s.withDefaultPattern(fallback)
	if err := s.validate(); err != nil {
		b.setErr(err)
		return
	}
	b.style = s
}

func (b *base) setLabel(text string, offset geom.Pt) {
	b.label = &label{text: text, offset: offset}
}

func (b *base) appendLabel(dst []string, anchor geom.Pt) []string {
	if b.label == nil {
		return dst
	}
	return append(dst, svgText(anchor.Add(b.label.offset), b.style.Color, "", b.label.text))
}

// Arrowheads have a fixed size in diagram units, so they keep the
// same visual weight whatever the axes scale.
const (
	arrowLength    = 8.
	arrowHalfWidth = 3.
)

// arrowhead returns the vertices of the arrowhead polygon with its
// tip at the given point, oriented along dir (document space).
func arrowhead(tip, dir geom.Pt) [3]geom.Pt {
	u := dir.Normalize()
	n := u.Normal()
	back := tip.Sub(u.Mul(arrowLength))
	return [3]geom.Pt{tip, back.Add(n.Mul(arrowHalfWidth)), back.Sub(n.Mul(arrowHalfWidth))}
}

func midpoint(a, b geom.Pt) geom.Pt {
	return a.Add(b).Mul(0.5)
}

// Point renders as a filled circle.
type Point struct {
	base
	size float64 // circle radius, in diagram units
	at   geom.Pt
}

// NewPoint returns a point of radius size centered at the given
// axes-local coordinates.
func NewPoint(size float64, at geom.Pt, opts ...Options) (*Point, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("diagram: invalid point size %g (must be > 0)", size)
	}
	st, err := resolveStyle(opts, Solid)
	if err != nil {
		return nil, err
	}
	return &Point{base: base{style: st}, size: size, at: at}, nil
}

// SetStyle replaces the resolved style of the point.
func (p *Point) SetStyle(s Style) *Point {
	p.setStyle(s, Solid)
	return p
}

// Label attaches a text annotation, drawn at the point center
// shifted by offset.
func (p *Point) Label(text string, offset geom.Pt) *Point {
	p.setLabel(text, offset)
	return p
}

// AddTo appends the point to the axes and returns the point.
func (p *Point) AddTo(ax *Axes) *Point {
	ax.Add(p)
	return p
}

// fillColor is the circle fill: the style fill when set, else the
// stroke color.
func (p *Point) fillColor() string {
	if p.style.Fill != "" {
		return p.style.Fill
	}
	return p.style.Color
}

func (p *Point) appendSVG(dst []string, m geom.Matrix2D) []string {
	center := m.Apply(p.at)
	dst = append(dst, svgCircle(center, p.size, p.fillColor()))
	return p.appendLabel(dst, center)
}

// Vector renders as a line with an arrowhead polygon at its tip.
type Vector struct {
	base
	from geom.Pt
	dir  geom.Pt
}

// NewVector returns a vector anchored at from (axes-local) and
// extending by dir. Vectors default to dashed strokes.
func NewVector(from, dir geom.Pt, opts ...Options) (*Vector, error) {
	st, err := resolveStyle(opts, Dashed)
	if err != nil {
		return nil, err
	}
	return &Vector{base: base{style: st}, from: from, dir: dir}, nil
}

// SetStyle replaces the resolved style of the vector.
func (v *Vector) SetStyle(s Style) *Vector {
	v.setStyle(s, Dashed)
	return v
}

// Label attaches a text annotation, drawn at the vector midpoint
// shifted by offset.
func (v *Vector) Label(text string, offset geom.Pt) *Vector {
	v.setLabel(text, offset)
	return v
}

// AddTo appends the vector to the axes and returns the vector.
func (v *Vector) AddTo(ax *Axes) *Vector {
	ax.Add(v)
	return v
}

func (v *Vector) appendSVG(dst []string, m geom.Matrix2D) []string {
	a := m.Apply(v.from)
	b := m.Apply(v.from.Add(v.dir))
	dst = append(dst, svgLine(a, b, v.style, true))
	if v.dir != (geom.Pt{}) {
		head := arrowhead(b, b.Sub(a))
		dst = append(dst, svgPolygon(v.style.Color, head[:]...))
	}
	return v.appendLabel(dst, midpoint(a, b))
}

// Spline renders as a single path of cubic Hermite spans: between
// two consecutive points (p0, t0) and (p1, t1) the cubic control
// points are p0 + t0/3 and p1 - t1/3.
type Spline struct {
	base
	points   []geom.Pt
	tangents []geom.Pt
}

// NewSpline returns the Hermite spline through the given axes-local
// points, with one tangent per point.
func NewSpline(points, tangents []geom.Pt, opts ...Options) (*Spline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("diagram: a spline needs at least two points, got %d", len(points))
	}
	if len(points) != len(tangents) {
		return nil, fmt.Errorf("diagram: mismatched spline points and tangents (%d vs %d)", len(points), len(tangents))
	}
	st, err := resolveStyle(opts, Solid)
	if err != nil {
		return nil, err
	}
	sp := &Spline{base: base{style: st}}
	sp.points = append(sp.points, points...)
	sp.tangents = append(sp.tangents, tangents...)
	return sp, nil
}

// SetStyle replaces the resolved style of the spline.
func (sp *Spline) SetStyle(s Style) *Spline {
	sp.setStyle(s, Solid)
	return sp
}

// Label attaches a text annotation, drawn at the middle control
// point shifted by offset.
func (sp *Spline) Label(text string, offset geom.Pt) *Spline {
	sp.setLabel(text, offset)
	return sp
}

// AddTo appends the spline to the axes and returns the spline.
func (sp *Spline) AddTo(ax *Axes) *Spline {
	ax.Add(sp)
	return sp
}

func (sp *Spline) appendSVG(dst []string, m geom.Matrix2D) []string {
	path := geom.HermitePath(sp.points, sp.tangents).Transform(m)
	dst = append(dst, svgPathElement(path.ToSVGPath(), sp.style))
	return sp.appendLabel(dst, m.Apply(sp.points[len(sp.points)/2]))
}
