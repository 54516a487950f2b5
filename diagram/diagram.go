// Implements a small object model to author vector diagrams:
// a Figure owns positioned Diagrams, a Diagram owns coordinate
// Axes, and an Axes owns geometric primitives (points, vectors
// and splines). The assembled tree serializes to a single SVG
// document, or can be handed to a painting driver such as
// diagrams/raster.
//
// Objects are built by constructors and configured by chainable
// setters; invalid values are rejected without modifying their
// target, and the first violation is surfaced again when the
// figure is encoded.
package diagram

import (
	"fmt"

	"github.com/benoitkugler/diagrams/geom"
)

// Diagram is a positioned, sized container of Axes within a figure.
// Its children are wrapped in a group element translated by the
// diagram position; no scaling happens at the diagram level.
type Diagram struct {
	width, height float64
	pos           geom.Pt // top-left corner, figure-local
	style         Style   // used for the border rectangle
	fill          string
	border        bool
	axes          []*Axes
	err           error
}

// NewDiagram returns a diagram of the given size, positioned at the
// figure origin. No fill nor border rectangle is drawn by default.
func NewDiagram(width, height float64) (*Diagram, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("diagram: invalid diagram size %g x %g", width, height)
	}
	return &Diagram{width: width, height: height, style: themes["default"]}, nil
}

func (d *Diagram) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Err returns the first configuration error recorded on the diagram
// or on one of its axes, or nil.
func (d *Diagram) Err() error {
	if d.err != nil {
		return d.err
	}
	for _, ax := range d.axes {
		if err := ax.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Size sets the diagram dimensions, in figure units.
func (d *Diagram) Size(width, height float64) *Diagram {
	if !(width > 0) || !(height > 0) {
		d.setErr(fmt.Errorf("diagram: invalid diagram size %g x %g", width, height))
		return d
	}
	d.width, d.height = width, height
	return d
}

// Position sets the top-left corner of the diagram within the figure.
func (d *Diagram) Position(x, y float64) *Diagram {
	d.pos = geom.Pt{X: x, Y: y}
	return d
}

// Fill enables a background rectangle of the given color behind the
// diagram content; an empty color disables it again.
func (d *Diagram) Fill(color string) *Diagram {
	if color != "" {
		if _, err := parseColor(color); err != nil {
			d.setErr(err)
			return d
		}
	}
	d.fill = color
	return d
}

// Border draws the diagram outline using the diagram style.
func (d *Diagram) Border(on bool) *Diagram {
	d.border = on
	return d
}

// Style sets the style of the border rectangle.
func (d *Diagram) Style(s Style) *Diagram {
	s = s.withDefaultPattern(Solid)
	if err := s.validate(); err != nil {
		d.setErr(err)
		return d
	}
	d.style = s
	return d
}

// AddAxes appends a coordinate system to the diagram.
func (d *Diagram) AddAxes(ax *Axes) *Diagram {
	if ax == nil {
		d.setErr(fmt.Errorf("diagram: nil axes"))
		return d
	}
	d.axes = append(d.axes, ax)
	return d
}

// hasRect reports whether the fill/border rectangle is drawn.
func (d *Diagram) hasRect() bool {
	return d.fill != "" || d.border
}

// fillValue is the rectangle fill attribute.
func (d *Diagram) fillValue() string {
	if d.fill == "" {
		return "none"
	}
	return d.fill
}

func (d *Diagram) appendSVG(dst []string) []string {
	dst = append(dst, fmt.Sprintf("<g transform=\"translate(%s,%s)\">", ff(d.pos.X), ff(d.pos.Y)))
	if d.hasRect() {
		var border *Style
		if d.border {
			border = &d.style
		}
		dst = append(dst, svgRect(d.width, d.height, d.fillValue(), border))
	}
	for _, ax := range d.axes {
		dst = ax.appendSVG(dst, geom.Identity)
	}
	return append(dst, "</g>")
}
