package geom

import "math"

// This file implements the transformation from
// high level shapes to their path equivalent

// cubicKappa is the control point offset, as a fraction of the
// radius, approximating a quarter circle with one cubic segment.
const cubicKappa = 4 * (math.Sqrt2 - 1) / 3

// AddCircle adds the circle of center (cx, cy) and radius r,
// as four closed cubic quadrants.
func (p *Path) AddCircle(cx, cy, r float64) {
	k := r * cubicKappa
	p.Start(Pt{cx + r, cy})
	p.CubeBezier(Pt{cx + r, cy + k}, Pt{cx + k, cy + r}, Pt{cx, cy + r})
	p.CubeBezier(Pt{cx - k, cy + r}, Pt{cx - r, cy + k}, Pt{cx - r, cy})
	p.CubeBezier(Pt{cx - r, cy - k}, Pt{cx - k, cy - r}, Pt{cx, cy - r})
	p.CubeBezier(Pt{cx + k, cy - r}, Pt{cx + r, cy - k}, Pt{cx + r, cy})
	p.Stop(true)
}

// AddRect adds the closed axis-aligned rectangle spanning
// (minX, minY) to (maxX, maxY).
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.Start(Pt{minX, minY})
	p.Line(Pt{maxX, minY})
	p.Line(Pt{maxX, maxY})
	p.Line(Pt{minX, maxY})
	p.Stop(true)
}

// AddPolygon adds the closed polygon through the given vertices.
func (p *Path) AddPolygon(vertices ...Pt) {
	if len(vertices) == 0 {
		return
	}
	p.Start(vertices[0])
	for _, v := range vertices[1:] {
		p.Line(v)
	}
	p.Stop(true)
}

// HermitePath returns the path tracing the cubic Hermite spline
// through the given points with the given tangents, one cubic
// segment per consecutive pair of points. The control points of
// segment (p0, t0) -> (p1, t1) are p0 + t0/3 and p1 - t1/3.
// It expects len(points) == len(tangents), with at least two points.
func HermitePath(points, tangents []Pt) Path {
	path := make(Path, 0, len(points))
	path.Start(points[0])
	for i := 0; i+1 < len(points); i++ {
		p1 := points[i+1]
		c1 := points[i].Add(tangents[i].Mul(1. / 3))
		c2 := p1.Sub(tangents[i+1].Mul(1. / 3))
		path.CubeBezier(c1, c2, p1)
	}
	return path
}
