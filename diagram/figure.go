package diagram

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/diagrams/geom"
)

// Figure is the top-level canvas: it owns diagrams and produces the
// final SVG document. Figures are independent values; building two
// figures concurrently is safe as long as they share no children.
type Figure struct {
	width, height float64
	title         *title
	background    string
	diagrams      []*Diagram
	err           error
}

type title struct {
	text string
	at   geom.Pt
}

// NewFigure returns an empty 800 x 600 figure.
func NewFigure() *Figure {
	return &Figure{width: 800, height: 600}
}

func (f *Figure) setErr(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the first configuration error recorded on the figure
// or on any of its diagrams, axes and primitives, or nil.
func (f *Figure) Err() error {
	if f.err != nil {
		return f.err
	}
	for _, d := range f.diagrams {
		if err := d.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Size sets the figure dimensions, in pixels.
func (f *Figure) Size(width, height float64) *Figure {
	if !(width > 0) || !(height > 0) {
		f.setErr(fmt.Errorf("diagram: invalid figure size %g x %g", width, height))
		return f
	}
	f.width, f.height = width, height
	return f
}

// Dimensions returns the figure size, in pixels.
func (f *Figure) Dimensions() (width, height float64) {
	return f.width, f.height
}

// Title adds a centered text element at the given position.
func (f *Figure) Title(text string, at geom.Pt) *Figure {
	f.title = &title{text: text, at: at}
	return f
}

// Background fills the whole canvas with the given color, behind
// every diagram; an empty color disables it again. By default the
// canvas is left transparent.
func (f *Figure) Background(color string) *Figure {
	if color != "" {
		if _, err := parseColor(color); err != nil {
			f.setErr(err)
			return f
		}
	}
	f.background = color
	return f
}

// AddDiagram appends a diagram to the figure.
func (f *Figure) AddDiagram(d *Diagram) *Figure {
	if d == nil {
		f.setErr(fmt.Errorf("diagram: nil diagram"))
		return f
	}
	f.diagrams = append(f.diagrams, d)
	return f
}

// document assembles the SVG text for the current state. The output
// only depends on that state, so re-encoding an unchanged figure
// yields identical bytes.
func (f *Figure) document() string {
	parts := []string{fmt.Sprintf("<svg width=%q height=%q xmlns=%q>",
		ff(f.width), ff(f.height), svgNamespace)}
	if f.background != "" {
		parts = append(parts, svgRect(f.width, f.height, f.background, nil))
	}
	if f.title != nil {
		parts = append(parts, svgText(f.title.at, "black", "middle", f.title.text))
	}
	for _, d := range f.diagrams {
		parts = d.appendSVG(parts)
	}
	parts = append(parts, "</svg>")
	return strings.Join(parts, "\n")
}

// Encode writes the figure as an SVG document. It fails without
// writing anything if a configuration error was recorded anywhere
// in the figure tree.
func (f *Figure) Encode(w io.Writer) error {
	if err := f.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, f.document())
	return err
}

// Save writes the figure to the named SVG file, creating or
// truncating it. This is the only I/O boundary of the package: a
// configuration error is reported before the file is even opened,
// and file system errors are returned unchanged.
func (f *Figure) Save(path string) error {
	if err := f.Err(); err != nil {
		return err
	}
	fin, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(fin); err != nil {
		fin.Close()
		return err
	}
	return fin.Close()
}
