package diagram

import (
	"image/color"

	"github.com/benoitkugler/diagrams/geom"
)

// Given an assembled figure, implements how to draw it on a
// rendering backend. This requires a driver implementing the actual
// draw operations, such as a rasterizer to output .png images.

// Drawer knows how to do the actual draw operations but doesn't
// need any knowledge of the diagram model. In particular, the
// transformation matrices are already applied to the points before
// sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a geom.Pt)

	// Line adds a line from the current point to b.
	Line(b geom.Pt)

	// QuadBezier adds a quadratic bezier curve to the path.
	QuadBezier(b, c geom.Pt)

	// CubeBezier adds a cubic bezier curve to the path.
	CubeBezier(b, c, d geom.Pt)

	// Stop closes the path to the start point if closeLoop is true.
	Stop(closeLoop bool)

	// SetColor sets the color for the current path.
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current
	// settings, depending on the drawing mode.
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path.
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// SetStroke parametrizes the stroking of the current path.
	// dash is nil for solid strokes.
	SetStroke(width float64, dash []float64)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and will be called
	// before every path. If the `willXXX` boolean is false, the
	// returned drawer should be nil to avoid useless operations.
	// When both booleans are true, one can assume that the exact
	// same draw operations will be performed on the Filler first
	// and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// pathTo replays the path operations on the drawer.
func pathTo(d Drawer, p geom.Path) {
	for _, op := range p {
		switch op := op.(type) {
		case geom.MoveTo:
			d.Start(geom.Pt(op))
		case geom.LineTo:
			d.Line(geom.Pt(op))
		case geom.QuadTo:
			d.QuadBezier(op[0], op[1])
		case geom.CubicTo:
			d.CubeBezier(op[0], op[1], op[2])
		case geom.Close:
			d.Stop(true)
		}
	}
}

// paintPath sends one path to the driver, filling it with the named
// color (unless empty or "none") and stroking it (unless stroke is
// nil). Color names were validated when the styles were resolved.
func paintPath(d Driver, path geom.Path, fill string, stroke *Style) {
	filler, stroker := d.SetupDrawers(fill != "" && fill != "none", stroke != nil)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(true)
		pathTo(filler, path)
		filler.Stop(false)
		c, _ := parseColor(fill)
		filler.SetColor(c)
		filler.Draw()
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStroke(stroke.Thickness, stroke.Pattern.dashes())
		pathTo(stroker, path)
		stroker.Stop(false)
		c, _ := parseColor(stroke.Color)
		stroker.SetColor(c)
		stroker.Draw()
	}
}

// paintLine strokes the single segment a-b.
func paintLine(d Driver, a, b geom.Pt, s Style) {
	var p geom.Path
	p.Start(a)
	p.Line(b)
	paintPath(d, p, "", &s)
}

// Draw sends the figure to the rendering driver, in the same order
// as the SVG emission. Text content (title and labels) is not
// drawn: drivers only receive geometry. It fails before any draw
// operation if a configuration error was recorded in the tree.
func (f *Figure) Draw(d Driver) error {
	if err := f.Err(); err != nil {
		return err
	}
	if f.background != "" {
		var p geom.Path
		p.AddRect(0, 0, f.width, f.height)
		paintPath(d, p, f.background, nil)
	}
	for _, dia := range f.diagrams {
		dia.drawTo(d)
	}
	return nil
}

func (dia *Diagram) drawTo(d Driver) {
	tr := geom.Identity.Translate(dia.pos.X, dia.pos.Y)
	if dia.hasRect() {
		var p geom.Path
		p.AddRect(dia.pos.X, dia.pos.Y, dia.pos.X+dia.width, dia.pos.Y+dia.height)
		var border *Style
		if dia.border {
			border = &dia.style
		}
		paintPath(d, p, dia.fillValue(), border)
	}
	for _, ax := range dia.axes {
		ax.drawTo(d, tr)
	}
}

func (ax *Axes) drawTo(d Driver, tr geom.Matrix2D) {
	m := tr.Mult(ax.transform())
	for _, l := range ax.axisLines(m) {
		paintLine(d, l.a, l.b, ax.style)
		if l.head != nil {
			var p geom.Path
			p.AddPolygon(l.head[:]...)
			paintPath(d, p, ax.style.Color, nil)
		}
	}
	for _, tk := range ax.ticks {
		paintLine(d, m.Apply(tk.a), m.Apply(tk.b), tk.style)
	}
	for _, p := range ax.prims {
		p.drawTo(d, m)
	}
}

func (p *Point) drawTo(d Driver, m geom.Matrix2D) {
	center := m.Apply(p.at)
	var path geom.Path
	path.AddCircle(center.X, center.Y, p.size)
	paintPath(d, path, p.fillColor(), nil)
}

func (v *Vector) drawTo(d Driver, m geom.Matrix2D) {
	a := m.Apply(v.from)
	b := m.Apply(v.from.Add(v.dir))
	paintLine(d, a, b, v.style)
	if v.dir != (geom.Pt{}) {
		head := arrowhead(b, b.Sub(a))
		var p geom.Path
		p.AddPolygon(head[:]...)
		paintPath(d, p, v.style.Color, nil)
	}
}

func (sp *Spline) drawTo(d Driver, m geom.Matrix2D) {
	path := geom.HermitePath(sp.points, sp.tangents).Transform(m)
	paintPath(d, path, "", &sp.style)
}
