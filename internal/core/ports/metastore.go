package ports

import "go.trai.ch/incjc/internal/core/domain"

// MetaStore persists metadata generations.
//
//go:generate go run go.uber.org/mock/mockgen -source=metastore.go -destination=mocks/mock_metastore.go -package=mocks
type MetaStore interface {
	// Exists reports whether dir holds all three metadata artifacts.
	Exists(dir string) bool
	// Load reads the generation stored in dir.
	// It fails with domain.ErrMetadataCorrupt when an artifact is missing or malformed.
	Load(dir string) (*domain.MetaInfo, error)
	// CreateOrReset replaces whatever is at dir with an empty store.
	CreateOrReset(dir string) error
	// Save resets dir and writes meta into it.
	Save(dir string, meta *domain.MetaInfo) error
	// Remove deletes the store at dir. A missing store is not an error.
	Remove(dir string) error
}
