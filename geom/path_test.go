package geom

import "testing"

func TestFormatFloat(t *testing.T) {
	for _, test := range []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{30, "30"},
		{800, "800"},
		{2.5, "2.5"},
		{1. / 3, "0.333"},
		{20 + 1./3, "20.333"},
		{-7.25, "-7.25"},
		{0.0004, "0"},
		{-0.0004, "0"},
		{59.9999, "60"},
	} {
		if got := FormatFloat(test.value); got != test.expected {
			t.Errorf("FormatFloat(%v): got %s, expected %s", test.value, got, test.expected)
		}
	}
}

func TestToSVGPath(t *testing.T) {
	var p Path
	p.Start(Pt{0, 0})
	p.Line(Pt{10.5, 0})
	p.QuadBezier(Pt{15, 5}, Pt{20, 0})
	p.CubeBezier(Pt{1. / 3, 0}, Pt{40, 20 + 1./3}, Pt{40, 20})
	p.Stop(true)

	expected := "M0,0 L10.5,0 Q15,5,20,0 C0.333,0,40,20.333,40,20 Z"
	if got := p.ToSVGPath(); got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
	if p.String() != p.ToSVGPath() {
		t.Errorf("String should match ToSVGPath")
	}
}

func TestPathClear(t *testing.T) {
	var p Path
	p.Start(Pt{1, 1})
	p.Line(Pt{2, 2})
	p.Stop(false) // no-op
	if len(p) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(p))
	}
	p.Clear()
	if len(p) != 0 {
		t.Errorf("expected empty path after Clear, got %d operations", len(p))
	}
}

func TestPathTransform(t *testing.T) {
	var p Path
	p.Start(Pt{1, 2})
	p.Line(Pt{3, 4})
	p.QuadBezier(Pt{0, 1}, Pt{1, 0})
	p.CubeBezier(Pt{1, 1}, Pt{2, 2}, Pt{3, 3})
	p.Stop(true)

	m := Identity.Translate(10, 20)
	q := p.Transform(m)

	expected := "M11,22 L13,24 Q10,21,11,20 C11,21,12,22,13,23 Z"
	if got := q.ToSVGPath(); got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
	// the source path is left unchanged
	if got := p.ToSVGPath(); got != "M1,2 L3,4 Q0,1,1,0 C1,1,2,2,3,3 Z" {
		t.Errorf("source path was mutated: %s", got)
	}
}
