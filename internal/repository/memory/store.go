// Package memory is an in-memory implementation of the repository interfaces.
// It backs use case and handler tests; production persistence is PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
)

// Store holds every table as an insertion-ordered slice.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	seq   map[string]int64
	fails map[string]error

	data tables
}

type tables struct {
	businesses    []*domain.Business
	categories    []*domain.Category
	users         []*domain.User
	claims        []*domain.ClaimRequest
	itineraries   []*domain.Itinerary
	days          []*domain.ItineraryDay
	items         []*domain.ItineraryItem
	collaborators []*domain.Collaborator
	bookings      []*domain.TransportBooking
}

func NewStore() *Store {
	return &Store{
		seq:   make(map[string]int64),
		fails: make(map[string]error),
	}
}

// FailOn makes the named operation (e.g. "items.Delete") return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fails, op)
		return
	}
	s.fails[op] = err
}

// begin locks the store and returns the injected failure for op, if any.
// Callers must unlock s.mu.
func (s *Store) begin(op string) error {
	s.mu.Lock()
	return s.fails[op]
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *Store) snapshot() (tables, map[string]int64) {
	seq := make(map[string]int64, len(s.seq))
	for k, v := range s.seq {
		seq[k] = v
	}
	return tables{
		businesses:    cloneAll(s.data.businesses),
		categories:    cloneAll(s.data.categories),
		users:         cloneAll(s.data.users),
		claims:        cloneAll(s.data.claims),
		itineraries:   cloneAll(s.data.itineraries),
		days:          cloneAll(s.data.days),
		items:         cloneAll(s.data.items),
		collaborators: cloneAll(s.data.collaborators),
		bookings:      cloneAll(s.data.bookings),
	}, seq
}

type txKey struct{}

type transactor struct {
	store *Store
}

func (s *Store) Transactor() repository.Transactor {
	return &transactor{store: s}
}

// WithinTransaction serializes transactions and restores the pre-transaction
// state when fn fails. Nested calls join the outer transaction.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()

	t.store.mu.Lock()
	saved, savedSeq := t.store.snapshot()
	t.store.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			t.store.restore(saved, savedSeq)
			panic(p)
		}
		if err != nil {
			t.store.restore(saved, savedSeq)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

func (s *Store) restore(saved tables, seq map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = saved
	s.seq = seq
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func cloneAll[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, v := range in {
		out = append(out, clone(v))
	}
	return out
}

// filter returns copies of the rows matching keep, in insertion order.
func filter[T any](in []*T, keep func(*T) bool) []*T {
	out := make([]*T, 0)
	for _, v := range in {
		if keep(v) {
			out = append(out, clone(v))
		}
	}
	return out
}

func find[T any](in []*T, match func(*T) bool) (int, *T) {
	for i, v := range in {
		if match(v) {
			return i, v
		}
	}
	return -1, nil
}

// removeWhere drops matching rows and reports how many were removed.
func removeWhere[T any](in []*T, match func(*T) bool) ([]*T, int64) {
	out := in[:0]
	var n int64
	for _, v := range in {
		if match(v) {
			n++
			continue
		}
		out = append(out, v)
	}
	return out, n
}
