package ports

// Hasher computes content digests used for change detection.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns a stable digest of the file's bytes.
	HashFile(path string) (string, error)
}
