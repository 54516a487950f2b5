package diagram

import (
	"strings"
	"testing"

	"github.com/benoitkugler/diagrams/geom"
)

// keep the compiler honest about the drawable set
var (
	_ Primitive = (*Point)(nil)
	_ Primitive = (*Vector)(nil)
	_ Primitive = (*Spline)(nil)
)

func TestPointSVG(t *testing.T) {
	p, err := NewPoint(5, geom.Pt{X: 10, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	out := p.appendSVG(nil, geom.Identity.Translate(20, 20))
	if len(out) != 1 {
		t.Fatalf("expected one element, got %d", len(out))
	}
	if out[0] != `<circle cx="30" cy="30" r="5" fill="black"/>` {
		t.Errorf("got %s", out[0])
	}

	filled, err := NewPoint(3, geom.Pt{}, Options{Fill: "red"})
	if err != nil {
		t.Fatal(err)
	}
	out = filled.appendSVG(nil, geom.Identity)
	if out[0] != `<circle cx="0" cy="0" r="3" fill="red"/>` {
		t.Errorf("got %s", out[0])
	}
}

func TestPointErrors(t *testing.T) {
	if _, err := NewPoint(0, geom.Pt{}); err == nil {
		t.Error("expected an error for a zero size")
	}
	if _, err := NewPoint(-2, geom.Pt{}); err == nil {
		t.Error("expected an error for a negative size")
	}
	if _, err := NewPoint(1, geom.Pt{}, Options{Theme: "nope"}); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestPointLabel(t *testing.T) {
	p, err := NewPoint(2, geom.Pt{X: 10, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	p.Label("A", geom.Pt{X: 4, Y: -4})
	out := p.appendSVG(nil, geom.Identity.Translate(20, 20))
	if len(out) != 2 {
		t.Fatalf("expected circle and label, got %d elements", len(out))
	}
	if out[1] != `<text x="34" y="26" fill="black">A</text>` {
		t.Errorf("got %s", out[1])
	}
}

func TestVectorSVG(t *testing.T) {
	v, err := NewVector(geom.Pt{}, geom.Pt{X: 10})
	if err != nil {
		t.Fatal(err)
	}
	out := v.appendSVG(nil, geom.Identity)
	if len(out) != 2 {
		t.Fatalf("expected line and arrowhead, got %d elements", len(out))
	}
	if out[0] != `<line x1="0" y1="0" x2="10" y2="0" stroke="black" stroke-width="1" stroke-dasharray="5,3" stroke-linecap="round"/>` {
		t.Errorf("got %s", out[0])
	}
	if out[1] != `<polygon points="10,0 2,3 2,-3" fill="black"/>` {
		t.Errorf("got %s", out[1])
	}
}

func TestVectorZeroDirection(t *testing.T) {
	v, err := NewVector(geom.Pt{X: 5, Y: 5}, geom.Pt{})
	if err != nil {
		t.Fatal(err)
	}
	out := v.appendSVG(nil, geom.Identity)
	if len(out) != 1 {
		t.Fatalf("a zero vector should emit its line only, got %d elements", len(out))
	}
}

func TestVectorLabel(t *testing.T) {
	v, err := NewVector(geom.Pt{}, geom.Pt{X: 10}, Options{Pattern: Solid})
	if err != nil {
		t.Fatal(err)
	}
	v.Label("v", geom.Pt{Y: -2})
	out := v.appendSVG(nil, geom.Identity)
	if out[len(out)-1] != `<text x="5" y="-2" fill="black">v</text>` {
		t.Errorf("got %s", out[len(out)-1])
	}
}

func TestSplineSVG(t *testing.T) {
	sp, err := NewSpline(
		[]geom.Pt{{X: 0, Y: 0}, {X: 40, Y: 20}},
		[]geom.Pt{{X: 1, Y: 0}, {X: 0, Y: -1}},
	)
	if err != nil {
		t.Fatal(err)
	}
	out := sp.appendSVG(nil, geom.Identity)
	if len(out) != 1 {
		t.Fatalf("expected one element, got %d", len(out))
	}
	expected := `<path d="M0,0 C0.333,0,40,20.333,40,20" stroke="black" stroke-width="1" stroke-linecap="round" fill="none"/>`
	if out[0] != expected {
		t.Errorf("got      %s\nexpected %s", out[0], expected)
	}
}

func TestSplineErrors(t *testing.T) {
	one := []geom.Pt{{X: 1, Y: 1}}
	if _, err := NewSpline(one, one); err == nil || !strings.Contains(err.Error(), "two points") {
		t.Errorf("expected a point count error, got %v", err)
	}
	two := []geom.Pt{{}, {X: 1}}
	if _, err := NewSpline(two, one); err == nil || !strings.Contains(err.Error(), "mismatched") {
		t.Errorf("expected a mismatch error, got %v", err)
	}
}

func TestSplineCopiesInput(t *testing.T) {
	points := []geom.Pt{{X: 0, Y: 0}, {X: 40, Y: 20}}
	tangents := []geom.Pt{{X: 1, Y: 0}, {X: 0, Y: -1}}
	sp, err := NewSpline(points, tangents)
	if err != nil {
		t.Fatal(err)
	}
	points[0] = geom.Pt{X: 99, Y: 99}
	tangents[0] = geom.Pt{X: 99, Y: 99}
	out := sp.appendSVG(nil, geom.Identity)
	if !strings.HasPrefix(out[0], `<path d="M0,0 `) {
		t.Errorf("mutating the input slices changed the spline: %s", out[0])
	}
}

func TestSetStyleKeepsStateOnError(t *testing.T) {
	p, err := NewPoint(2, geom.Pt{})
	if err != nil {
		t.Fatal(err)
	}
	p.SetStyle(Style{Color: "notacolor", Thickness: 1, Pattern: Solid})
	if p.Err() == nil {
		t.Fatal("expected a recorded error")
	}
	out := p.appendSVG(nil, geom.Identity)
	if out[0] != `<circle cx="0" cy="0" r="2" fill="black"/>` {
		t.Errorf("a rejected style must not be installed: %s", out[0])
	}

	// the first error sticks across further setters
	first := p.Err()
	p.SetStyle(Style{Color: "red", Thickness: -1})
	if p.Err() != first {
		t.Error("the first recorded error should win")
	}
}

func TestAddTo(t *testing.T) {
	ax, err := NewAxes(geom.Pt{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPoint(1, geom.Pt{X: 2, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.AddTo(ax); got != p {
		t.Error("AddTo should return its receiver")
	}
	v, err := NewVector(geom.Pt{}, geom.Pt{X: 1})
	if err != nil {
		t.Fatal(err)
	}
	v.AddTo(ax)
	if len(ax.prims) != 2 || ax.prims[0] != Primitive(p) || ax.prims[1] != Primitive(v) {
		t.Error("AddTo should append to the axes in order")
	}
}

func TestArrowheadGeometry(t *testing.T) {
	head := arrowhead(geom.Pt{X: 10}, geom.Pt{X: 10})
	expected := [3]geom.Pt{{X: 10}, {X: 2, Y: 3}, {X: 2, Y: -3}}
	if head != expected {
		t.Errorf("got %v, expected %v", head, expected)
	}

	head = arrowhead(geom.Pt{X: 20, Y: 30}, geom.Pt{Y: 10})
	expected = [3]geom.Pt{{X: 20, Y: 30}, {X: 17, Y: 22}, {X: 23, Y: 22}}
	if head != expected {
		t.Errorf("got %v, expected %v", head, expected)
	}
}
