// Provides a light scanning pass over SVG documents: elements are
// inventoried rather than rendered, which is enough to validate the
// structure of generated figures.
package svgscan

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrorMode determines how elements outside the recognized subset
// are reported.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unrecognized elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unrecognized element.
	WarnErrorMode
	// StrictErrorMode fails on the first unrecognized element.
	StrictErrorMode
)

// Summary inventories the elements of one SVG document.
type Summary struct {
	Width, Height string // top level width and height attributes

	Groups   int
	Rects    int
	Circles  int
	Lines    int
	Polygons int
	Paths    int
	Texts    int
}

// scanCursor is used while walking the document
type scanCursor struct {
	summary   *Summary
	errorMode ErrorMode
}

type countFunc func(c *scanCursor, attrs []xml.Attr) error

var countFuncs = map[string]countFunc{
	"svg":     svgF,
	"g":       gF,
	"rect":    rectF,
	"circle":  circleF,
	"line":    lineF,
	"polygon": polygonF,
	"path":    pathF,
	"text":    textF,
}

func (c *scanCursor) readStartElement(se xml.StartElement) error {
	cf, ok := countFuncs[se.Name.Local]
	if !ok {
		errStr := "cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	return cf(c, se.Attr)
}

func svgF(c *scanCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			c.summary.Width = attr.Value
		case "height":
			c.summary.Height = attr.Value
		}
	}
	return nil
}

func gF(c *scanCursor, _ []xml.Attr) error {
	c.summary.Groups++
	return nil
}

func rectF(c *scanCursor, attrs []xml.Attr) error {
	var seen int
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width", "height":
			if _, err := strconv.ParseFloat(attr.Value, 64); err != nil {
				return err
			}
			seen++
		}
	}
	if seen != 2 {
		return errors.New("rect element misses size attributes")
	}
	c.summary.Rects++
	return nil
}

func circleF(c *scanCursor, attrs []xml.Attr) error {
	var seen int
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx", "cy", "r":
			if _, err := strconv.ParseFloat(attr.Value, 64); err != nil {
				return err
			}
			seen++
		}
	}
	if seen != 3 {
		return errors.New("circle element misses geometry attributes")
	}
	c.summary.Circles++
	return nil
}

func lineF(c *scanCursor, attrs []xml.Attr) error {
	var seen int
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1", "y1", "x2", "y2":
			if _, err := strconv.ParseFloat(attr.Value, 64); err != nil {
				return err
			}
			seen++
		}
	}
	if seen != 4 {
		return errors.New("line element misses coordinate attributes")
	}
	c.summary.Lines++
	return nil
}

func polygonF(c *scanCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		points := splitOnCommaOrSpace(attr.Value)
		if len(points)%2 != 0 {
			return errors.New("polygon has odd number of points")
		}
		for _, p := range points {
			if _, err := strconv.ParseFloat(p, 64); err != nil {
				return err
			}
		}
	}
	c.summary.Polygons++
	return nil
}

func pathF(c *scanCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" && attr.Value == "" {
			return errors.New("path element with empty outline")
		}
	}
	c.summary.Paths++
	return nil
}

func textF(c *scanCursor, _ []xml.Attr) error {
	c.summary.Texts++
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// ReadSummaryStream scans the document from the given io.Reader.
// Only the subset of SVG written by the diagram package is
// recognized. errMode determines if the scan ignores, errors out, or
// logs a warning if it meets an element outside that subset.
func ReadSummaryStream(stream io.Reader, errMode ErrorMode) (*Summary, error) {
	summary := &Summary{}
	cursor := &scanCursor{summary: summary, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg document")
				}
				break
			}
			return summary, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err := cursor.readStartElement(se); err != nil {
				return summary, err
			}
		}
	}
	return summary, nil
}

// ReadSummary scans the named SVG file.
func ReadSummary(path string, errMode ErrorMode) (*Summary, error) {
	fin, errf := os.Open(path)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadSummaryStream(fin, errMode)
}
