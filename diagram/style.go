package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// LinePattern selects how strokes are rendered.
type LinePattern uint8

const (
	// the zero value is treated as "not set" in Options and style
	// literals: it resolves to the default pattern of the object
	unsetPattern LinePattern = iota
	Solid
	Dashed
)

func (p LinePattern) String() string {
	switch p {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	default:
		return "<unset pattern>"
	}
}

// dashArray is the stroke-dasharray value of dashed strokes.
const dashArray = "5,3"

// dashes returns the dash pattern used by stroking drivers,
// or nil for solid strokes.
func (p LinePattern) dashes() []float64 {
	if p == Dashed {
		return []float64{5, 3}
	}
	return nil
}

// Style describes how one object is stroked and filled.
// A Style value is never mutated once assigned to an object:
// restyling an object replaces the whole value.
type Style struct {
	Color     string      // stroke color, a named SVG color or a #hex value
	Thickness float64     // stroke width, must be > 0
	Pattern   LinePattern // the zero value inherits the object default
	Fill      string      // fill color; empty or "none" for no fill
}

// validate checks that the style can be rendered.
func (s Style) validate() error {
	if _, err := parseColor(s.Color); err != nil {
		return err
	}
	if !(s.Thickness > 0) {
		return fmt.Errorf("diagram: invalid thickness %g (must be > 0)", s.Thickness)
	}
	if s.Pattern != Solid && s.Pattern != Dashed {
		return fmt.Errorf("diagram: invalid line pattern %d", s.Pattern)
	}
	if s.Fill != "" && s.Fill != "none" {
		if _, err := parseColor(s.Fill); err != nil {
			return err
		}
	}
	return nil
}

// withDefaultPattern resolves an unset pattern to the given default.
func (s Style) withDefaultPattern(p LinePattern) Style {
	if s.Pattern == unsetPattern {
		s.Pattern = p
	}
	return s
}

// strokeAttrs returns the stroke presentation attributes of s,
// with a leading space.
func (s Style) strokeAttrs() string {
	out := fmt.Sprintf(" stroke=%q stroke-width=%q", s.Color, ff(s.Thickness))
	if s.Pattern == Dashed {
		out += fmt.Sprintf(" stroke-dasharray=%q", dashArray)
	}
	return out
}

// themes is the process-wide set of style presets. It is read-only:
// client code only reaches it through LookupTheme.
var themes = map[string]Style{
	"default":   {Color: "black", Thickness: 2, Pattern: Solid},
	"axes":      {Color: "gray", Thickness: 1, Pattern: Dashed},
	"highlight": {Color: "red", Thickness: 2.5, Pattern: Solid},
	"subtle":    {Color: "lightgray", Thickness: 1, Pattern: Dashed},
}

// LookupTheme returns the style preset registered under the given name.
func LookupTheme(name string) (Style, error) {
	st, ok := themes[name]
	if !ok {
		return Style{}, fmt.Errorf("diagram: unknown theme %q", name)
	}
	return st, nil
}

// ThemeNames lists the registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options configures the style of a primitive at construction.
// The zero value keeps every default. Precedence, from highest to
// lowest: Style, then the field overrides, then Theme, then the
// library defaults (black, thickness 1, solid lines except for
// vectors which default to dashed, no fill).
type Options struct {
	// Style is an explicit, full style; when set it overrides
	// every other option.
	Style *Style

	// Theme selects a preset by name (see ThemeNames).
	Theme string

	// Field overrides, applied on top of the theme or the defaults.
	Color     string
	Thickness float64
	Pattern   LinePattern
	Fill      string
}

// resolveStyle merges the optional configuration into a full style,
// for an object whose default line pattern is fallback.
func resolveStyle(opts []Options, fallback LinePattern) (Style, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Style != nil {
		st := o.Style.withDefaultPattern(fallback)
		return st, st.validate()
	}
	st := Style{Color: "black", Thickness: 1, Pattern: fallback}
	if o.Theme != "" {
		var err error
		st, err = LookupTheme(o.Theme)
		if err != nil {
			return Style{}, err
		}
	}
	if o.Color != "" {
		st.Color = o.Color
	}
	if o.Thickness != 0 {
		st.Thickness = o.Thickness
	}
	if o.Pattern != unsetPattern {
		st.Pattern = o.Pattern
	}
	if o.Fill != "" {
		st.Fill = o.Fill
	}
	return st, st.validate()
}

// parseColor resolves a named SVG color or a #rgb / #rrggbb value.
func parseColor(v string) (color.RGBA, error) {
	if v == "" {
		return color.RGBA{}, errors.New("diagram: empty color")
	}
	if v[0] == '#' {
		var r, g, b uint8
		switch len(v) {
		case 4:
			if _, err := fmt.Sscanf(v, "#%1x%1x%1x", &r, &g, &b); err != nil {
				return color.RGBA{}, fmt.Errorf("diagram: invalid color %q", v)
			}
			return color.RGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
		case 7:
			if _, err := fmt.Sscanf(v, "#%02x%02x%02x", &r, &g, &b); err != nil {
				return color.RGBA{}, fmt.Errorf("diagram: invalid color %q", v)
			}
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
		return color.RGBA{}, fmt.Errorf("diagram: invalid color %q", v)
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("diagram: unsupported color %q", v)
}
