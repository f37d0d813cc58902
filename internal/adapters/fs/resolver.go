package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptResolver = (*Resolver)(nil)

// scriptExtensions are the file extensions picked up when a pattern names a directory.
var scriptExtensions = []string{".yaml", ".yml"}

// Resolver implements ports.ScriptResolver using filepath.Glob and a Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveScripts expands each pattern relative to root. A match that is a directory
// contributes every script file below it. The result is sorted and free of duplicates.
func (r *Resolver) ResolveScripts(patterns []string, root string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrScriptNotFound, "pattern matched no files"), "path", path)
		}

		for _, match := range matches {
			files, err := r.expand(match)
			if err != nil {
				return nil, err
			}
			result = append(result, files...)
		}
	}

	slices.Sort(result)
	return slices.Compact(result), nil
}

func (r *Resolver) expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	for file := range r.walker.WalkFiles(path, nil) {
		if slices.Contains(scriptExtensions, filepath.Ext(file)) {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrScriptNotFound, "directory holds no scripts"), "path", path)
	}
	return files, nil
}
