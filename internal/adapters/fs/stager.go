package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// Stager moves class files between classpath directories.
type Stager struct {
	walker *Walker
}

// NewStager creates a new Stager.
func NewStager(walker *Walker) *Stager {
	return &Stager{walker: walker}
}

// TempDir creates a scratch directory in the system temp location.
func (s *Stager) TempDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", domain.TmpDirPrefix)
	if err != nil {
		return "", nil, zerr.Wrap(err, domain.ErrTempDirFailed.Error())
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() { _ = os.RemoveAll(dir) })
	}
	return dir, cleanup, nil
}

// ResetDir removes dir with all its content and recreates it empty.
// An existing non-directory at dir is a configuration error.
func (s *Stager) ResetDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return zerr.With(zerr.Wrap(domain.ErrClasspathNotDirectory, "cannot reset output classpath"), "path", dir)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return zerr.With(zerr.Wrap(err, domain.ErrCleanDirFailed.Error()), "path", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanDirFailed.Error()), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanDirFailed.Error()), "path", dir)
	}
	return nil
}

// CopyClasses copies every class file below from into to, keeping the package layout.
// Classes named in skip are left out. A missing from directory holds no classes.
func (s *Stager) CopyClasses(from, to string, skip domain.Set) error {
	if _, err := os.Stat(from); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	for path, err := range s.walker.WalkFiles(from, nil) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrClassDiscoveryFailed.Error()), "path", from)
		}
		if !strings.HasSuffix(path, domain.ClassExt) {
			continue
		}

		rel, err := filepath.Rel(from, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCopyClassFailed.Error()), "path", path)
		}
		if skip.Has(ClassName(rel)) {
			continue
		}

		if err := copyFile(path, filepath.Join(to, rel)); err != nil {
			return err
		}
	}
	return nil
}

// DeleteClasses removes the class files of the given classes from dir.
func (s *Stager) DeleteClasses(dir string, classes domain.Set) error {
	for _, class := range classes.Sorted() {
		path := filepath.Join(dir, domain.ClassFileName(class))
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrDeleteClassFailed.Error()), "path", path)
		}
	}
	return nil
}

// ClassName derives the fully-qualified class name from a class file path relative to its classpath root.
func ClassName(rel string) string {
	name := strings.TrimSuffix(filepath.ToSlash(rel), domain.ClassExt)
	return strings.ReplaceAll(name, "/", ".")
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyClassFailed.Error()), "path", dst)
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from walking a classpath directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyClassFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Destination is inside a classpath directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyClassFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCopyClassFailed.Error()), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyClassFailed.Error()), "path", dst)
	}
	return nil
}
