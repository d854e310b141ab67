package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes PNGs below Dir, mirroring the source layout.
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Write stores data at Dir/OutputName(rel).
func (s *FileSink) Write(ctx context.Context, rel string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("output path escapes %s: %s", s.Dir, rel)
	}

	path := filepath.Join(s.Dir, OutputName(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

var _ Sink = (*FileSink)(nil)
