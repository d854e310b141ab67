package walk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/iconpress/pkg/errors"
)

// Walk lists the files under root. When recursive is false, child
// directories are skipped; when true, they are descended depth-first.
func Walk(root string, recursive bool) ([]string, error) {
	var files []string
	if err := walkDir(root, recursive, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walkDir(dir string, recursive bool, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTraversal, err, "list %s", dir)
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !e.IsDir() {
			*files = append(*files, path)
			continue
		}
		if !recursive {
			continue
		}
		if err := walkDir(path, recursive, files); err != nil {
			return err
		}
	}
	return nil
}

// Rel returns path relative to root, falling back to the base name when
// path is not under root.
func Rel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(path)
	}
	return rel
}
