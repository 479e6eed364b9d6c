// Package memory provides mutex-guarded, in-process implementations of the
// repository ports. Stored records are copied in and out so callers can never
// mutate store state through a returned value.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
)

// WriteCounter counts the writes performed against a Store.
type WriteCounter struct {
	creates atomic.Int64
	updates atomic.Int64
}

// Creates returns the number of successful Create calls.
func (w *WriteCounter) Creates() int64 { return w.creates.Load() }

// Updates returns the number of successful Update calls.
func (w *WriteCounter) Updates() int64 { return w.updates.Load() }

// Total returns all successful writes.
func (w *WriteCounter) Total() int64 { return w.Creates() + w.Updates() }

// Reset zeroes the counters.
func (w *WriteCounter) Reset() {
	w.creates.Store(0)
	w.updates.Store(0)
}

// identity describes how a record kind is keyed and identified.
type identity[T any] struct {
	kind   string
	key    func(T) string
	idOf   func(T) int64
	withID func(T, int64) T
	// validate, when set, rejects records before they are written.
	validate func(T) error
}

// table is a generic keyed record set shared by the entity stores.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[string]T
	nextID int64
	id     identity[T]
	writes *WriteCounter
}

func newTable[T any](id identity[T], writes *WriteCounter) *table[T] {
	return &table[T]{rows: make(map[string]T), id: id, writes: writes}
}

// Exists reports whether a record with the candidate's identity is stored.
func (t *table[T]) Exists(_ context.Context, candidate T) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[t.id.key(candidate)]
	return ok, nil
}

// Create stores candidate under a new ID. Returns ErrStoreWrite if the identity exists.
func (t *table[T]) Create(_ context.Context, candidate T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.check(candidate); err != nil {
		var zero T
		return zero, err
	}
	k := t.id.key(candidate)
	if _, ok := t.rows[k]; ok {
		var zero T
		return zero, apperrors.NewStoreWriteError(fmt.Sprintf("%s %s already exists", t.id.kind, k), apperrors.ErrDuplicate)
	}
	t.nextID++
	created := t.id.withID(candidate, t.nextID)
	t.rows[k] = created
	t.writes.creates.Add(1)
	return created, nil
}

// FindOne retrieves the record with the candidate's identity.
func (t *table[T]) FindOne(_ context.Context, candidate T) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	k := t.id.key(candidate)
	row, ok := t.rows[k]
	if !ok {
		var zero T
		return zero, apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", t.id.kind, k))
	}
	return row, nil
}

// Update overwrites the stored record with record's identity, keeping the stored ID.
func (t *table[T]) Update(_ context.Context, record T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.check(record); err != nil {
		return err
	}
	k := t.id.key(record)
	stored, ok := t.rows[k]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", t.id.kind, k))
	}
	t.rows[k] = t.id.withID(record, t.id.idOf(stored))
	t.writes.updates.Add(1)
	return nil
}

func (t *table[T]) check(record T) error {
	if t.id.validate == nil {
		return nil
	}
	if err := t.id.validate(record); err != nil {
		return apperrors.NewStoreWriteError(fmt.Sprintf("invalid %s %s", t.id.kind, t.id.key(record)), err)
	}
	return nil
}

// selectRows returns the rows matching keep, sorted by less.
func (t *table[T]) selectRows(keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, row := range t.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// page cuts a date-ordered series to the rows after the given date, at most limit long.
func page[T any](rows []T, dateOf func(T) time.Time, after *time.Time, limit int) []T {
	start := 0
	if after != nil {
		start = sort.Search(len(rows), func(i int) bool { return dateOf(rows[i]).After(*after) })
	}
	rows = rows[start:]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
