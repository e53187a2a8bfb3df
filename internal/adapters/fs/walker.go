// Package fs provides file system adapters for discovering, hashing and staging files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileFinder = (*Walker)(nil)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Find returns the sorted absolute paths of the files below root ending in suffix.
func (w *Walker) Find(root, suffix string, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(zerr.New("invalid exclude pattern"), "pattern", pattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDiscoveryFailed.Error()), "root", root)
	}

	var files []string
	for path, walkErr := range w.WalkFiles(absRoot, exclude) {
		if walkErr != nil {
			return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrSourceDiscoveryFailed.Error()), "root", absRoot)
		}
		if strings.HasSuffix(path, suffix) {
			files = append(files, path)
		}
	}
	slices.Sort(files)

	return files, nil
}

// WalkFiles yields every regular file below root, skipping version control directories and
// anything matching one of the exclude globs. Globs use forward slashes and are matched
// against the path relative to root. A walk failure is yielded once as the error value.
func (w *Walker) WalkFiles(root string, exclude []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := errors.New("stopped")

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			if path != root && excluded(root, path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path, nil) {
				return stopped
			}
			return nil
		})

		if err != nil && !errors.Is(err, stopped) {
			yield("", err)
		}
	}
}

func excluded(root, path string, exclude []string) bool {
	if len(exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range exclude {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}
