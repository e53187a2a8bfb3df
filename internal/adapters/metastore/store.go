// Package metastore persists metadata generations as three line-oriented text artifacts.
package metastore

import (
	"bufio"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetaStore = (*Store)(nil)

var artifacts = []string{domain.ClassesFile, domain.SourcesFile, domain.DepsFile}

// Store implements ports.MetaStore on a plain directory.
// Saving is not crash-atomic: an interrupted save leaves a store that Load rejects or that is incomplete.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Exists reports whether every artifact is present in dir.
func (s *Store) Exists(dir string) bool {
	for _, name := range artifacts {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			return false
		}
	}
	return true
}

// Load reads the generation stored in dir.
func (s *Store) Load(dir string) (*domain.MetaInfo, error) {
	meta := domain.NewMetaInfo()

	err := readRecords(filepath.Join(dir, domain.ClassesFile), func(class, source string) {
		meta.AddClass(class, source)
	})
	if err != nil {
		return nil, err
	}

	hashes := make(map[string]string)
	err = readRecords(filepath.Join(dir, domain.SourcesFile), func(source, hash string) {
		hashes[source] = hash
	})
	if err != nil {
		return nil, err
	}
	meta.AddSources(hashes)

	err = readRecords(filepath.Join(dir, domain.DepsFile), meta.AddDependency)
	if err != nil {
		return nil, err
	}

	return meta, nil
}

// CreateOrReset removes whatever exists at dir and creates an empty store.
func (s *Store) CreateOrReset(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataResetFailed.Error()), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataResetFailed.Error()), "path", dir)
	}
	for _, name := range artifacts {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, nil, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMetadataResetFailed.Error()), "path", path)
		}
	}
	return nil
}

// Save resets dir and writes meta into it with every artifact sorted.
func (s *Store) Save(dir string, meta *domain.MetaInfo) error {
	if err := s.CreateOrReset(dir); err != nil {
		return err
	}

	classes := meta.Classes()
	err := writeRecords(filepath.Join(dir, domain.ClassesFile), func(emit func(string, string)) {
		for _, class := range meta.ClassNames() {
			emit(class, classes[class])
		}
	})
	if err != nil {
		return err
	}

	hashes := meta.SourceHashes()
	err = writeRecords(filepath.Join(dir, domain.SourcesFile), func(emit func(string, string)) {
		for _, source := range slices.Sorted(maps.Keys(hashes)) {
			emit(source, hashes[source])
		}
	})
	if err != nil {
		return err
	}

	return writeRecords(filepath.Join(dir, domain.DepsFile), func(emit func(string, string)) {
		for _, edge := range meta.Edges() {
			emit(edge.Dependency, edge.Dependent)
		}
	})
}

// Remove deletes the store at dir.
func (s *Store) Remove(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataRemoveFailed.Error()), "path", dir)
	}
	return nil
}

// readRecords calls fn for every non-blank line of the artifact at path.
func readRecords(path string, fn func(key, value string)) error {
	f, err := os.Open(path) //nolint:gosec // Path is built from the metadata directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrMetadataCorrupt, "metadata artifact is missing"), "path", path)
		}
		return zerr.With(zerr.Wrap(err, "failed to read metadata"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, domain.FieldSep)
		if !ok || key == "" || value == "" {
			err := zerr.With(zerr.Wrap(domain.ErrMetadataCorrupt, "malformed metadata record"), "path", path)
			return zerr.With(err, "line", lineNo)
		}
		fn(key, value)
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read metadata"), "path", path)
	}
	return nil
}

// writeRecords writes the records produced by fill to the artifact at path, one per line.
func writeRecords(path string, fill func(emit func(key, value string))) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, domain.FilePerm) //nolint:gosec // Path is built from the metadata directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", path)
	}

	w := bufio.NewWriter(f)
	fill(func(key, value string) {
		_, _ = w.WriteString(key + domain.FieldSep + value + "\n")
	})

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", path)
	}
	return nil
}
