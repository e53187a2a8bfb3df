package ports

import "go.trai.ch/incjc/internal/core/domain"

// Stager moves class files between the output classpath and scratch directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// TempDir creates a scratch directory. The returned cleanup removes it and is safe to call more than once.
	TempDir() (string, func(), error)
	// ResetDir empties dir, creating it when missing.
	ResetDir(dir string) error
	// CopyClasses copies every class file below from into to, except the classes named in skip.
	// Existing files in to are overwritten.
	CopyClasses(from, to string, skip domain.Set) error
	// DeleteClasses removes the class files of the named classes from dir. Missing files are ignored.
	DeleteClasses(dir string, classes domain.Set) error
}
