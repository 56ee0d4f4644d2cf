// Package source finds the files in a project that should be filtered.
package source

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// ErrNotDirectory indicates that Find was given something other than a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// FindOptions controls which files Find returns.
type FindOptions struct {
	// Extensions are the lower-case file extensions to match, with leading dot.
	Extensions []string
	// ExcludeDirs are directory names that are never descended into.
	ExcludeDirs []string
	// Recursive descends into subdirectories.
	Recursive bool
}

// shouldSkipDir determines if a directory should be skipped during the walk.
func shouldSkipDir(name, path, rootDir string, opts FindOptions) bool {
	if path == rootDir {
		return false
	}
	if name != "" && name[0] == '.' {
		return true
	}
	if slices.Contains(opts.ExcludeDirs, name) {
		return true
	}
	return !opts.Recursive
}

// Find searches a directory for source files.
// If opts.Recursive is true, it searches subdirectories as well.
func Find(dir string, opts FindOptions) ([]string, error) {
	// Validate the directory exists first
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	var files []string

	walkFn := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip inaccessible paths within the directory
		}

		if d.IsDir() {
			if shouldSkipDir(d.Name(), path, dir, opts) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && Matches(d.Name(), opts.Extensions) {
			files = append(files, path)
		}
		return nil
	}

	if err := filepath.WalkDir(dir, walkFn); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Matches checks if a filename has one of the given extensions.
func Matches(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	return slices.Contains(extensions, ext)
}
