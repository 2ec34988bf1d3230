// Package fs provides the filesystem collaborators around the codec
// layer: scanning data directories for supported spectra files and
// watching them for changes. Decoding and encoding stay in the formats
// adapter; this package only deals in paths and events.
package fs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/spectrakit/nmrio/pkg/core"
)

// Scan walks root and returns the paths of all files whose extension is
// registered and whose root-relative path matches pattern. An empty
// pattern matches everything. Results are sorted.
func Scan(root, pattern string, registry *core.Registry) ([]string, error) {
	if pattern == "" {
		pattern = "**/*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, err := registry.ByExtension(filepath.Ext(path)); err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
