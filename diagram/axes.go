package diagram

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/diagrams/geom"
)

// TickOrientation selects the axis (or axes) receiving tick marks.
type TickOrientation uint8

const (
	TicksBoth TickOrientation = iota
	TicksX
	TicksY
)

// TickPlacement selects how tick marks cross the axis line.
type TickPlacement uint8

const (
	TicksInside TickPlacement = iota // extending into the plot area
	TicksOutside
	TicksMiddle // centered on the axis line
)

const defaultTickLength = 5.

// TickConfig parametrizes one generation of tick marks.
// The zero values of Length, Orientation, Placement and Style mean:
// length 5, both axes, inside, and thin solid black.
type TickConfig struct {
	Spacing     float64 // distance between ticks, axes-local, must be > 0
	Length      float64
	Orientation TickOrientation
	Placement   TickPlacement
	Style       *Style
}

// tick is one generated mark, stored in axes-local coordinates.
type tick struct {
	a, b  geom.Pt
	style Style
}

// generate derives the tick segments for axes of the given extents.
func (cfg TickConfig) generate(size geom.Pt) ([]tick, error) {
	if !(cfg.Spacing > 0) {
		return nil, fmt.Errorf("diagram: invalid tick spacing %g (must be > 0)", cfg.Spacing)
	}
	length := cfg.Length
	if length == 0 {
		length = defaultTickLength
	}
	if length < 0 {
		return nil, fmt.Errorf("diagram: invalid tick length %g", cfg.Length)
	}
	if cfg.Orientation > TicksY {
		return nil, fmt.Errorf("diagram: invalid tick orientation %d", cfg.Orientation)
	}
	if cfg.Placement > TicksMiddle {
		return nil, fmt.Errorf("diagram: invalid tick placement %d", cfg.Placement)
	}
	st := Style{Color: "black", Thickness: 1, Pattern: Solid}
	if cfg.Style != nil {
		st = cfg.Style.withDefaultPattern(Solid)
		if err := st.validate(); err != nil {
			return nil, err
		}
	}

	var out []tick
	if cfg.Orientation == TicksBoth || cfg.Orientation == TicksX {
		for i := 1; ; i++ {
			v := float64(i) * cfg.Spacing
			if v > size.X {
				break
			}
			out = append(out, xTick(v, length, cfg.Placement, st))
		}
	}
	if cfg.Orientation == TicksBoth || cfg.Orientation == TicksY {
		for i := 1; ; i++ {
			v := float64(i) * cfg.Spacing
			if v > size.Y {
				break
			}
			out = append(out, yTick(v, length, cfg.Placement, st))
		}
	}
	return out, nil
}

func xTick(v, length float64, placement TickPlacement, st Style) tick {
	switch placement {
	case TicksOutside:
		return tick{a: geom.Pt{X: v}, b: geom.Pt{X: v, Y: -length}, style: st}
	case TicksMiddle:
		return tick{a: geom.Pt{X: v, Y: -length / 2}, b: geom.Pt{X: v, Y: length / 2}, style: st}
	default:
		return tick{a: geom.Pt{X: v}, b: geom.Pt{X: v, Y: length}, style: st}
	}
}

func yTick(v, length float64, placement TickPlacement, st Style) tick {
	switch placement {
	case TicksOutside:
		return tick{a: geom.Pt{Y: v}, b: geom.Pt{X: -length, Y: v}, style: st}
	case TicksMiddle:
		return tick{a: geom.Pt{X: -length / 2, Y: v}, b: geom.Pt{X: length / 2, Y: v}, style: st}
	default:
		return tick{a: geom.Pt{Y: v}, b: geom.Pt{X: length, Y: v}, style: st}
	}
}

// arrowFlags records which coordinate lines end with an arrowhead.
// A negative flag also extends the line on the negative side.
type arrowFlags struct {
	plusX, minusX, plusY, minusY bool
}

// Axes is a local coordinate system within a diagram: a primitive
// at axes-local p is drawn at origin + p*scale (diagram-local).
// The y axis follows the SVG convention and grows downward, unless
// FlipY is set.
type Axes struct {
	origin geom.Pt
	scale  float64
	size   geom.Pt // extents of the coordinate lines, axes-local
	flipY  bool
	style  Style
	arrows arrowFlags
	ticks  []tick
	prims  []Primitive
	err    error
}

// NewAxes returns axes at the given diagram-local origin, with the
// given uniform scale. The coordinate lines span 10 axes units on
// both axes and carry arrowheads on their positive ends; see Size
// and Arrows to change that.
func NewAxes(origin geom.Pt, scale float64) (*Axes, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("diagram: invalid axes scale %g (must be > 0)", scale)
	}
	return &Axes{
		origin: origin,
		scale:  scale,
		size:   geom.Pt{X: 10, Y: 10},
		style:  themes["axes"],
		arrows: arrowFlags{plusX: true, plusY: true},
	}, nil
}

func (ax *Axes) setErr(err error) {
	if ax.err == nil {
		ax.err = err
	}
}

// Err returns the first configuration error recorded on the axes
// or on one of its primitives, or nil.
func (ax *Axes) Err() error {
	if ax.err != nil {
		return ax.err
	}
	for _, p := range ax.prims {
		if err := p.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Size sets the extents of the coordinate lines, in axes units.
func (ax *Axes) Size(w, h float64) *Axes {
	if !(w > 0) || !(h > 0) {
		ax.setErr(fmt.Errorf("diagram: invalid axes size %g x %g", w, h))
		return ax
	}
	ax.size = geom.Pt{X: w, Y: h}
	return ax
}

// FlipY makes the y axis grow upward from the origin instead of
// following the SVG downward convention.
func (ax *Axes) FlipY(flip bool) *Axes {
	ax.flipY = flip
	return ax
}

// Style sets the style of the coordinate lines themselves,
// independent of primitive styles.
func (ax *Axes) Style(s Style) *Axes {
	s = s.withDefaultPattern(Solid)
	if err := s.validate(); err != nil {
		ax.setErr(err)
		return ax
	}
	ax.style = s
	return ax
}

// Theme sets the coordinate line style from a named preset.
func (ax *Axes) Theme(name string) *Axes {
	st, err := LookupTheme(name)
	if err != nil {
		ax.setErr(err)
		return ax
	}
	ax.style = st
	return ax
}

// Arrows selects which coordinate lines are drawn with an arrowhead:
// enabling a negative direction also extends the line beyond the
// origin. The default is an arrow on +x and +y.
func (ax *Axes) Arrows(plusX, minusX, plusY, minusY bool) *Axes {
	ax.arrows = arrowFlags{plusX: plusX, minusX: minusX, plusY: plusY, minusY: minusY}
	return ax
}

// AddTicks generates tick marks along the coordinate lines. The
// marks are derived once from the current axes size: they are a
// snapshot, not updated by later mutations. Calling AddTicks again
// appends a further generation.
func (ax *Axes) AddTicks(cfg TickConfig) *Axes {
	ticks, err := cfg.generate(ax.size)
	if err != nil {
		ax.setErr(err)
		return ax
	}
	ax.ticks = append(ax.ticks, ticks...)
	return ax
}

// Add appends a primitive; later primitives are drawn on top.
func (ax *Axes) Add(p Primitive) *Axes {
	if p == nil {
		ax.setErr(errors.New("diagram: nil primitive"))
		return ax
	}
	ax.prims = append(ax.prims, p)
	return ax
}

// transform returns the axes-local to diagram-local map.
func (ax *Axes) transform() geom.Matrix2D {
	sy := ax.scale
	if ax.flipY {
		sy = -sy
	}
	return geom.Identity.Translate(ax.origin.X, ax.origin.Y).Scale(ax.scale, sy)
}

// axisLine is one coordinate line in document space, with its
// optional arrowhead.
type axisLine struct {
	a, b geom.Pt
	head *[3]geom.Pt
}

// axisLines lists the coordinate lines to draw under the document
// transform m, in emission order: +x, -x, +y, -y.
func (ax *Axes) axisLines(m geom.Matrix2D) []axisLine {
	origin := m.Apply(geom.Pt{})
	var out []axisLine
	add := func(end geom.Pt, withTip bool) {
		l := axisLine{a: origin, b: m.Apply(end)}
		if withTip {
			head := arrowhead(l.b, l.b.Sub(l.a))
			l.head = &head
		}
		out = append(out, l)
	}
	add(geom.Pt{X: ax.size.X}, ax.arrows.plusX)
	if ax.arrows.minusX {
		add(geom.Pt{X: -ax.size.X}, true)
	}
	add(geom.Pt{Y: ax.size.Y}, ax.arrows.plusY)
	if ax.arrows.minusY {
		add(geom.Pt{Y: -ax.size.Y}, true)
	}
	return out
}

// appendSVG emits the coordinate lines, then the ticks, then the
// user primitives, so that primitives stack on top.
func (ax *Axes) appendSVG(dst []string, tr geom.Matrix2D) []string {
	m := tr.Mult(ax.transform())
	for _, l := range ax.axisLines(m) {
		dst = append(dst, svgLine(l.a, l.b, ax.style, false))
		if l.head != nil {
			dst = append(dst, svgPolygon(ax.style.Color, l.head[:]...))
		}
	}
	for _, tk := range ax.ticks {
		dst = append(dst, svgLine(m.Apply(tk.a), m.Apply(tk.b), tk.style, false))
	}
	for _, p := range ax.prims {
		dst = p.appendSVG(dst, m)
	}
	return dst
}
