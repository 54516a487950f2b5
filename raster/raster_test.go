package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/diagrams/diagram"
	"github.com/benoitkugler/diagrams/geom"
)

func buildFigure(t *testing.T) *diagram.Figure {
	t.Helper()
	fig := diagram.NewFigure().Size(400, 300).Background("white")
	d, err := diagram.NewDiagram(300, 200)
	if err != nil {
		t.Fatal(err)
	}
	d.Position(50, 50)
	ax, err := diagram.NewAxes(geom.Pt{X: 20, Y: 20}, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, err := diagram.NewPoint(5, geom.Pt{X: 10, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	ax.Add(p)
	fig.AddDiagram(d.AddAxes(ax))
	return fig
}

func TestRenderFigure(t *testing.T) {
	img, err := RenderFigure(buildFigure(t))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("unexpected image size %v", b)
	}

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{A: 0xff}
	// the background covers the whole canvas
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("background pixel: got %v", got)
	}
	// the point is a filled disk centered at (80, 80)
	if got := img.RGBAAt(80, 80); got != black {
		t.Errorf("point pixel: got %v", got)
	}
	if got := img.RGBAAt(80, 83); got != black {
		t.Errorf("point interior pixel: got %v", got)
	}
}

func TestRenderWithoutBackground(t *testing.T) {
	fig := diagram.NewFigure().Size(100, 100)
	img, err := RenderFigure(fig)
	if err != nil {
		t.Fatal(err)
	}
	// the canvas stays transparent
	if got := img.RGBAAt(50, 50); got != (color.RGBA{}) {
		t.Errorf("got %v", got)
	}
}

func TestRenderInvalidFigure(t *testing.T) {
	fig := diagram.NewFigure().Size(-1, -1)
	if _, err := RenderFigure(fig); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.png")
	if err := SavePNG(buildFigure(t), path); err != nil {
		t.Fatal(err)
	}
	fin, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fin.Close()
	img, err := png.Decode(fin)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("unexpected image size %v", b)
	}
}

func TestSavePNGFailsBeforeCreatingFile(t *testing.T) {
	fig := diagram.NewFigure().Size(-1, -1)
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := SavePNG(fig, path); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("an invalid figure should not create the output file")
	}
}
