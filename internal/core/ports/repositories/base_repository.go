package repositories

import (
	"context"
)

// KeyedStore is the persistence capability shared by every entity kind.
// Records are addressed by their identity fields (not by store ID); the
// candidate passed in only needs those fields populated for lookups.
type KeyedStore[T any] interface {
	// Exists reports whether a record with the same identity is stored.
	Exists(ctx context.Context, candidate T) (bool, error)

	// Create inserts a new record and returns it with its store-assigned ID.
	// Returns apperrors.ErrStoreWrite if the identity already exists.
	Create(ctx context.Context, candidate T) (T, error)

	// FindOne retrieves the stored record with the candidate's identity.
	// Returns apperrors.ErrNotFound if absent.
	FindOne(ctx context.Context, candidate T) (T, error)

	// Update overwrites the non-identity fields of the stored record with
	// the candidate's identity.
	Update(ctx context.Context, record T) error
}
