// Package locator resolves user-entered file names and lists candidate files.
package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Normalize trims name, substitutes defaultName when it is empty and appends
// ext when the name does not already end with it.
func Normalize(name, defaultName, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}
	if ext != "" && !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}

// Resolve joins a relative name onto dir. Absolute names are returned as is.
func Resolve(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// List returns the sorted names of regular files in dir ending with ext.
// Symlinks are followed, so List agrees with Exists. Subdirectories are not
// searched.
func List(dir, ext string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if Exists(filepath.Join(dir, e.Name())) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
