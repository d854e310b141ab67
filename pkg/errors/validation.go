package errors

import (
	"math"
	"os"
	"strings"
	"unicode"
)

// ValidateRoot checks that path names an existing directory that can be
// used as the root of an icon walk.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Path must exist and be a directory
func ValidateRoot(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "root path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "root path contains invalid characters")
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(ErrCodeInvalidPath, "root path does not exist: %s", path)
		}
		return Wrap(ErrCodeInvalidPath, err, "stat %s", path)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "root path is not a directory: %s", path)
	}
	return nil
}

// ValidateOutputDir checks that dir can be used as an output directory.
// The directory does not need to exist, but if it exists it must be a directory.
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "output path is not a directory: %s", dir)
	}
	return nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
// name is used in the error message (e.g., "scale").
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", name, v)
	}
	return nil
}
