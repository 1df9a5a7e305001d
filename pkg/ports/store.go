package ports

import (
	"context"

	"github.com/aretw0/iterlab/pkg/domain"
)

// ResultStore defines the interface for caching solve outcomes.
// Solvers are pure, so a record stored under the digest of its normalized
// request stays valid for as long as the store keeps it.
type ResultStore interface {
	// Save persists the record under the given key.
	Save(ctx context.Context, key string, record *domain.Record) error

	// Load retrieves the record for a given key.
	// Returns domain.ErrResultNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Record, error)

	// Delete removes the record for a given key.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently held.
	List(ctx context.Context) ([]string, error)
}
