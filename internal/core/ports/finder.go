package ports

// FileFinder discovers files below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type FileFinder interface {
	// Find returns the absolute paths of the regular files below root whose name ends in suffix,
	// sorted. Paths matching one of the exclude globs (relative to root) are skipped.
	Find(root, suffix string, exclude []string) ([]string, error)
}
