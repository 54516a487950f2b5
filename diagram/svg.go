package diagram

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/benoitkugler/diagrams/geom"
)

// This file implements the SVG text form of the model: each object
// emits its own elements, and the figure concatenates them into the
// final document.

const svgNamespace = "http://www.w3.org/2000/svg"

// ff formats a coordinate or length for output.
func ff(v float64) string { return geom.FormatFloat(v) }

func svgLine(a, b geom.Pt, s Style, roundCap bool) string {
	out := fmt.Sprintf("<line x1=%q y1=%q x2=%q y2=%q%s",
		ff(a.X), ff(a.Y), ff(b.X), ff(b.Y), s.strokeAttrs())
	if roundCap {
		out += ` stroke-linecap="round"`
	}
	return out + "/>"
}

func svgCircle(center geom.Pt, r float64, fill string) string {
	return fmt.Sprintf("<circle cx=%q cy=%q r=%q fill=%q/>",
		ff(center.X), ff(center.Y), ff(r), fill)
}

func svgPolygon(fill string, vertices ...geom.Pt) string {
	pairs := make([]string, len(vertices))
	for i, v := range vertices {
		pairs[i] = ff(v.X) + "," + ff(v.Y)
	}
	return fmt.Sprintf("<polygon points=%q fill=%q/>", strings.Join(pairs, " "), fill)
}

func svgPathElement(d string, s Style) string {
	return fmt.Sprintf("<path d=%q%s stroke-linecap=\"round\" fill=\"none\"/>", d, s.strokeAttrs())
}

// svgRect emits a rectangle anchored at the local origin.
// border is nil when the rectangle is not stroked.
func svgRect(w, h float64, fill string, border *Style) string {
	out := fmt.Sprintf("<rect width=%q height=%q fill=%q", ff(w), ff(h), fill)
	if border != nil {
		out += border.strokeAttrs()
	}
	return out + "/>"
}

// svgText emits a text element. anchor is the optional text-anchor
// value ("middle" for centered titles).
func svgText(pos geom.Pt, fill, anchor, text string) string {
	out := fmt.Sprintf("<text x=%q y=%q", ff(pos.X), ff(pos.Y))
	if anchor != "" {
		out += fmt.Sprintf(" text-anchor=%q", anchor)
	}
	return out + fmt.Sprintf(" fill=%q>%s</text>", fill, escapeText(text))
}

func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
