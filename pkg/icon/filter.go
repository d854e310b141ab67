// Package icon recognizes vector icon sources by file extension.
package icon

import (
	"path/filepath"
	"strings"
)

// Ext is the recognized vector icon extension.
const Ext = ".svg"

// IsIcon reports whether path has the icon extension, ignoring case.
func IsIcon(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// Filter returns the icon paths of paths in their original order.
func Filter(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsIcon(p) {
			out = append(out, p)
		}
	}
	return out
}
