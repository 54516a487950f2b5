// Implements a raster backend to render figures
// into images, by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/benoitkugler/diagrams/diagram"
	"github.com/benoitkugler/diagrams/geom"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ diagram.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes the paths painted by a figure.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instances
}

// NewRenderer returns a renderer drawing on the given scanner.
// In addition to rasterizing lines like a Scanner, it can also
// rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// SetupDrawers returns the painters for the enabled roles, both
// sharing the renderer scanner.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (diagram.Filler, diagram.Stroker) {
	var f diagram.Filler
	var s diagram.Stroker
	if willFill {
		f = filler{rx: rd.filler}
	}
	if willStroke {
		s = stroker{rx: rd.dasher}
	}
	return f, s
}

// toFixedP converts a point to the fixed precision used by rasterx.
func toFixedP(p geom.Pt) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// filler adapts a rasterx.Filler to the model geometry.
type filler struct {
	rx *rasterx.Filler
}

func (f filler) Clear()                     { f.rx.Clear() }
func (f filler) Start(a geom.Pt)            { f.rx.Start(toFixedP(a)) }
func (f filler) Line(b geom.Pt)             { f.rx.Line(toFixedP(b)) }
func (f filler) QuadBezier(b, c geom.Pt)    { f.rx.QuadBezier(toFixedP(b), toFixedP(c)) }
func (f filler) CubeBezier(b, c, d geom.Pt) { f.rx.CubeBezier(toFixedP(b), toFixedP(c), toFixedP(d)) }
func (f filler) Stop(closeLoop bool)        { f.rx.Stop(closeLoop) }
func (f filler) SetColor(c color.Color)     { f.rx.Scanner.SetColor(c) }
func (f filler) Draw()                      { f.rx.Draw() }

func (f filler) SetWinding(useNonZeroWinding bool) { f.rx.SetWinding(useNonZeroWinding) }

// stroker adapts a rasterx.Dasher to the model geometry. Strokes
// are drawn with round caps and joins, matching the SVG output.
type stroker struct {
	rx *rasterx.Dasher
}

func (s stroker) Clear()                     { s.rx.Clear() }
func (s stroker) Start(a geom.Pt)            { s.rx.Start(toFixedP(a)) }
func (s stroker) Line(b geom.Pt)             { s.rx.Line(toFixedP(b)) }
func (s stroker) QuadBezier(b, c geom.Pt)    { s.rx.QuadBezier(toFixedP(b), toFixedP(c)) }
func (s stroker) CubeBezier(b, c, d geom.Pt) { s.rx.CubeBezier(toFixedP(b), toFixedP(c), toFixedP(d)) }
func (s stroker) Stop(closeLoop bool)        { s.rx.Stop(closeLoop) }
func (s stroker) SetColor(c color.Color)     { s.rx.Scanner.SetColor(c) }
func (s stroker) Draw()                      { s.rx.Draw() }

func (s stroker) SetStroke(width float64, dash []float64) {
	s.rx.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, dash, 0)
}

// RenderFigure uses a ScannerGV instance to render the figure into
// a new image and returns it.
func RenderFigure(fig *diagram.Figure) (*image.RGBA, error) {
	w, h := fig.Dimensions()
	width, height := int(w), int(h)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	if err := fig.Draw(renderer); err != nil {
		return nil, err
	}
	return img, nil
}

// SavePNG renders the figure and writes it to the named PNG file.
func SavePNG(fig *diagram.Figure, path string) error {
	img, err := RenderFigure(fig)
	if err != nil {
		return err
	}
	fin, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(fin, img); err != nil {
		fin.Close()
		return err
	}
	return fin.Close()
}
