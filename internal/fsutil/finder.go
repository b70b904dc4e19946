// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindByExtension returns the files under path with the given extension.
// A file path is returned as-is if it matches; a directory is searched
// recursively, skipping hidden entries. Results are sorted so downstream
// loading happens in a deterministic order.
func FindByExtension(path, extension string) ([]string, error) {
	if extension == "" || !strings.HasPrefix(extension, ".") {
		panic("extension must start with a dot")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %q: %w", path, err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(info.Name(), extension) {
			return nil, fmt.Errorf("%q does not have the %s extension", path, extension)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && p != path {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
