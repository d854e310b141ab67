package render

import (
	"github.com/matzehuels/iconpress/pkg/errors"
	"github.com/matzehuels/iconpress/pkg/placement"
)

// Config holds the render settings shared by every task of a run.
type Config struct {
	Size  int             // canvas side in pixels
	Scale float64         // multiplier applied to the intrinsic size
	Align placement.Align // placement of the icon on the canvas
}

// Validate rejects settings that would fail for every task.
func (c Config) Validate() error {
	if c.Size <= 0 || c.Size > MaxCanvasSize {
		return errors.New(errors.ErrCodeInvalidConfig,
			"size must be between 1 and %d, got %d", MaxCanvasSize, c.Size)
	}
	if err := errors.ValidatePositive("scale", c.Scale); err != nil {
		return err
	}
	if !c.Align.Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid align: %q", c.Align)
	}
	return nil
}

// Task is one icon to render.
type Task struct {
	Path   string // source file
	Rel    string // path relative to the walk root, used to name the output
	Config Config
}
