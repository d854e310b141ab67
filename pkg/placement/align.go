package placement

import (
	"strings"

	"github.com/matzehuels/iconpress/pkg/errors"
)

// Align is an alignment mode.
type Align string

// Alignment modes.
const (
	AlignAuto        Align = "auto"
	AlignCenter      Align = "center"
	AlignTopLeft     Align = "top-left"
	AlignTopRight    Align = "top-right"
	AlignBottomLeft  Align = "bottom-left"
	AlignBottomRight Align = "bottom-right"
)

// DefaultAlign is used when no mode is given.
const DefaultAlign = AlignAuto

// Aligns lists every supported mode in display order.
var Aligns = []Align{
	AlignAuto,
	AlignCenter,
	AlignTopLeft,
	AlignTopRight,
	AlignBottomLeft,
	AlignBottomRight,
}

// ParseAlign converts s to an Align, ignoring case and surrounding space.
// An empty string yields [DefaultAlign].
func ParseAlign(s string) (Align, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultAlign, nil
	}
	a := Align(s)
	if !a.Valid() {
		return "", errors.New(errors.ErrCodeInvalidConfig,
			"invalid align: %q (must be one of: %s)", s, alignList())
	}
	return a, nil
}

// Valid reports whether a is a supported mode.
func (a Align) Valid() bool {
	for _, v := range Aligns {
		if a == v {
			return true
		}
	}
	return false
}

func (a Align) String() string { return string(a) }

func alignList() string {
	names := make([]string, len(Aligns))
	for i, a := range Aligns {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
