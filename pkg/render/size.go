package render

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// dimensions holds the root width and height attributes in pixels.
// A zero value means the attribute is missing or not an absolute length.
type dimensions struct {
	w, h float64
}

// Pixels per unit at 96 dpi.
var unitPixels = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
}

// rootSize reads the width and height attributes of the first element.
func rootSize(src []byte) dimensions {
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return dimensions{}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		var d dimensions
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "width":
				d.w = parseLength(a.Value)
			case "height":
				d.h = parseLength(a.Value)
			}
		}
		return d
	}
}

// parseLength converts an absolute SVG length such as "16", "16px" or
// "0.5in" to pixels. Relative lengths (%, em, ex) and garbage yield 0.
func parseLength(s string) float64 {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && (s[i-1] >= 'a' && s[i-1] <= 'z' || s[i-1] >= 'A' && s[i-1] <= 'Z' || s[i-1] == '%') {
		i--
	}
	scale, ok := unitPixels[strings.ToLower(s[i:])]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v * scale
}

// intrinsicSize picks the icon size from the root attributes, completing a
// single attribute with the viewBox aspect ratio and falling back to the
// viewBox size.
func intrinsicSize(d dimensions, vbW, vbH float64) (float64, float64) {
	hasBox := vbW > 0 && vbH > 0
	switch {
	case d.w > 0 && d.h > 0:
		return d.w, d.h
	case d.w > 0 && hasBox:
		return d.w, d.w * vbH / vbW
	case d.h > 0 && hasBox:
		return d.h * vbW / vbH, d.h
	}
	return vbW, vbH
}
