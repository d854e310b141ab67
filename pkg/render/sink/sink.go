package sink

import (
	"context"
	"path/filepath"
	"strings"
)

// Sink persists one rendered icon.
type Sink interface {
	// Write stores data for the icon at rel and returns its location.
	Write(ctx context.Context, rel string, data []byte) (string, error)
}

// OutputName maps a source path relative to the walk root to the relative
// path of its PNG.
//
//	OutputName("sub/arrow.SVG") // "sub/arrow.png"
func OutputName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".png"
}
