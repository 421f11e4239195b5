// Package store defines the storage contract shared by every entity type.
//
// A Store keeps records of one entity type and hands out store-assigned,
// monotonically increasing identifiers. Lookups for a missing identifier are
// not errors: Get, Update and Delete return a nil record and a nil error.
// Errors are reserved for invalid requests (ErrEmptyPatch), unique key
// violations (ErrDuplicate) and backend failures (*StorageError).
package store

import (
	"context"
)

// Entity is implemented by the pointer type of every stored record.
type Entity interface {
	GetID() uint
	SetID(id uint)
}

// Store is the storage abstraction for one entity type.
type Store[T any] interface {
	// Save assigns a fresh id to a copy of record, persists it and returns the
	// stored copy. Any id already set on record is ignored.
	Save(ctx context.Context, record *T) (*T, error)

	// Get returns the record with the given id, or nil when absent.
	Get(ctx context.Context, id uint) (*T, error)

	// List returns every record ordered by id.
	List(ctx context.Context) ([]*T, error)

	// Update applies patch to the record with the given id and returns the
	// updated record, or nil when absent. Fields outside the patch are left
	// untouched.
	Update(ctx context.Context, id uint, patch Patch[T]) (*T, error)

	// Delete removes the record with the given id and returns its last value,
	// or nil when absent.
	Delete(ctx context.Context, id uint) (*T, error)

	// Find returns the records matching cond ordered by id.
	Find(ctx context.Context, cond Condition[T]) ([]*T, error)
}

// Patch describes a partial update. Apply must only touch the fields named
// by Columns; persistent stores write back exactly those columns.
type Patch[T any] struct {
	Columns []string
	Apply   func(*T)
}

// Set builds a single-column patch.
func Set[T any](column string, apply func(*T)) Patch[T] {
	return Patch[T]{Columns: []string{column}, Apply: apply}
}

// Validate reports ErrEmptyPatch when the patch cannot change anything.
func (p Patch[T]) Validate() error {
	if p.Apply == nil || len(p.Columns) == 0 {
		return ErrEmptyPatch
	}
	return nil
}

// Condition is an equality filter on one column. Match is the in-process
// form of the same predicate and must agree with Column = Value.
type Condition[T any] struct {
	Column string
	Value  any
	Match  func(*T) bool
}

// Where builds an equality condition.
func Where[T any](column string, value any, match func(*T) bool) Condition[T] {
	return Condition[T]{Column: column, Value: value, Match: match}
}
