// Package memstore is the volatile store.Store implementation. State lives in
// process memory and is lost on restart.
package memstore

import (
	"context"
	"sync"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
)

// Option configures a Store.
type Option[T any] func(*options[T])

type uniqueKey[T any] struct {
	column string
	key    func(*T) string
}

type options[T any] struct {
	name    string
	uniques []uniqueKey[T]
}

// WithName sets the entity name used in errors.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) { o.name = name }
}

// WithUnique rejects a Save or Update that would give two records the same
// key with store.ErrDuplicate.
func WithUnique[T any](column string, key func(*T) string) Option[T] {
	return func(o *options[T]) {
		o.uniques = append(o.uniques, uniqueKey[T]{column: column, key: key})
	}
}

// Store keeps records in a map guarded by one mutex. Every method holds the
// mutex for its whole duration, so calls are atomic but cannot be grouped.
type Store[T any, P interface {
	*T
	store.Entity
}] struct {
	name    string
	uniques []uniqueKey[T]

	mu      sync.Mutex
	records map[uint]*T
	order   []uint
	nextID  uint
}

func New[T any, P interface {
	*T
	store.Entity
}](opts ...Option[T]) *Store[T, P] {
	o := options[T]{name: "record"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, P]{
		name:    o.name,
		uniques: o.uniques,
		records: make(map[uint]*T),
		nextID:  1,
	}
}

func clone[T any](rec *T) *T {
	c := *rec
	return &c
}

func (s *Store[T, P]) Save(ctx context.Context, record *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStorageError(s.name, "save", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := clone(record)
	if s.conflicts(rec, 0) {
		return nil, store.ErrDuplicate
	}

	id := s.nextID
	s.nextID++
	P(rec).SetID(id)
	s.records[id] = rec
	s.order = append(s.order, id)

	return clone(rec), nil
}

func (s *Store[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStorageError(s.name, "get", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}

func (s *Store[T, P]) List(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStorageError(s.name, "list", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.records[id]))
	}
	return out, nil
}

func (s *Store[T, P]) Find(ctx context.Context, cond store.Condition[T]) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStorageError(s.name, "find", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*T, 0)
	for _, id := range s.order {
		rec := s.records[id]
		if cond.Match == nil || cond.Match(rec) {
			out = append(out, clone(rec))
		}
	}
	return out, nil
}

func (s *Store[T, P]) Update(ctx context.Context, id uint, patch store.Patch[T]) (*T, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, store.NewStorageError(s.name, "update", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, nil
	}

	next := clone(current)
	patch.Apply(next)
	P(next).SetID(id)
	if s.conflicts(next, id) {
		return nil, store.ErrDuplicate
	}

	s.records[id] = next
	return clone(next), nil
}

func (s *Store[T, P]) Delete(ctx context.Context, id uint) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStorageError(s.name, "delete", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return rec, nil
}

// Len returns the number of stored records.
func (s *Store[T, P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// conflicts reports whether rec shares a unique key with a record other
// than self. Callers hold s.mu.
func (s *Store[T, P]) conflicts(rec *T, self uint) bool {
	for _, u := range s.uniques {
		k := u.key(rec)
		for id, other := range s.records {
			if id != self && u.key(other) == k {
				return true
			}
		}
	}
	return false
}
