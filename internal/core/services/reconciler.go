package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
)

// Reconcilable is implemented by records that can be merged into a store by
// identity. SameValues compares non-identity fields only; WithIdentityOf
// returns the receiver's values under the stored record's identity.
type Reconcilable[T any] interface {
	SameValues(other T) bool
	WithIdentityOf(stored T) T
}

// UpsertAction tells what an upsert did.
type UpsertAction int

const (
	UpsertUnchanged UpsertAction = iota
	UpsertCreated
	UpsertUpdated
)

func (a UpsertAction) String() string {
	switch a {
	case UpsertCreated:
		return "created"
	case UpsertUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Reconciler merges candidate records into a keyed store: create when absent,
// update when the stored values differ, and no write otherwise.
type Reconciler[T Reconcilable[T]] struct {
	store portsrepo.KeyedStore[T]
}

// NewReconciler creates a Reconciler over store.
func NewReconciler[T Reconcilable[T]](store portsrepo.KeyedStore[T]) *Reconciler[T] {
	return &Reconciler[T]{store: store}
}

// Upsert stores candidate, which must carry full field values. It never
// produces more than one row per identity; a candidate equal to the stored
// record returns the stored record without writing.
func (r *Reconciler[T]) Upsert(ctx context.Context, candidate T) (T, UpsertAction, error) {
	var zero T

	exists, err := r.store.Exists(ctx, candidate)
	if err != nil {
		return zero, UpsertUnchanged, fmt.Errorf("check existence: %w", err)
	}
	if !exists {
		created, err := r.store.Create(ctx, candidate)
		if err != nil {
			return zero, UpsertUnchanged, fmt.Errorf("create: %w", err)
		}
		return created, UpsertCreated, nil
	}

	stored, err := r.store.FindOne(ctx, candidate)
	if err != nil {
		return zero, UpsertUnchanged, fmt.Errorf("read stored: %w", err)
	}
	if stored.SameValues(candidate) {
		return stored, UpsertUnchanged, nil
	}

	merged := candidate.WithIdentityOf(stored)
	if err := r.store.Update(ctx, merged); err != nil {
		return zero, UpsertUnchanged, fmt.Errorf("update: %w", err)
	}
	return merged, UpsertUpdated, nil
}

// UpsertStats counts the actions of a batch upsert.
type UpsertStats struct {
	Created   int
	Updated   int
	Unchanged int
}

func (s *UpsertStats) add(a UpsertAction) {
	switch a {
	case UpsertCreated:
		s.Created++
	case UpsertUpdated:
		s.Updated++
	default:
		s.Unchanged++
	}
}

// UpsertAll upserts each candidate in order and stops at the first failure.
func (r *Reconciler[T]) UpsertAll(ctx context.Context, candidates []T) (UpsertStats, error) {
	var stats UpsertStats
	for _, c := range candidates {
		_, action, err := r.Upsert(ctx, c)
		if err != nil {
			return stats, err
		}
		stats.add(action)
	}
	return stats, nil
}
