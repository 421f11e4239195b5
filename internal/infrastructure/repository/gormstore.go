package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/persistence/mappers"
	db "github.com/corycamp/support-ticket-backend/internal/shared/db"
	apperrors "github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/mapper"
)

// GormStore is the persistent store.Store implementation. Every call runs in
// its own transaction, nested as a savepoint when the context already
// carries one from db.TransactionManager.
type GormStore[T any, M any] struct {
	db     *gorm.DB
	entity string
	mapper mappers.Mapper[T, M]
}

func NewGormStore[T any, M any](gdb *gorm.DB, entity string, m mappers.Mapper[T, M]) *GormStore[T, M] {
	return &GormStore[T, M]{db: gdb, entity: entity, mapper: m}
}

func (s *GormStore[T, M]) transaction(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := db.GetTxFromContext(ctx, s.db).Transaction(fn)
	return s.translate(op, err)
}

// translate maps driver errors onto the store sentinels.
func (s *GormStore[T, M]) translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateError(err) {
		return store.ErrDuplicate
	}
	return store.NewStorageError(s.entity, op, err)
}

func (s *GormStore[T, M]) Save(ctx context.Context, record *T) (*T, error) {
	rec := *record
	if e, ok := any(&rec).(store.Entity); ok {
		e.SetID(0)
	}
	model := s.mapper.ToModel(&rec)

	var saved *T
	err := s.transaction(ctx, "save", func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		var err error
		saved, err = s.mapper.ToDomain(model)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// first loads one row, reporting a missing row as (nil, nil).
func (s *GormStore[T, M]) first(tx *gorm.DB, id uint) (*M, error) {
	var model M
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}

func (s *GormStore[T, M]) Get(ctx context.Context, id uint) (*T, error) {
	var found *T
	err := s.transaction(ctx, "get", func(tx *gorm.DB) error {
		model, err := s.first(tx, id)
		if err != nil || model == nil {
			return err
		}
		found, err = s.mapper.ToDomain(model)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *GormStore[T, M]) List(ctx context.Context) ([]*T, error) {
	return s.find(ctx, "list", nil)
}

func (s *GormStore[T, M]) Find(ctx context.Context, cond store.Condition[T]) ([]*T, error) {
	if cond.Column == "" {
		return s.List(ctx)
	}
	return s.find(ctx, "find", db.ColumnEquals(cond.Column, cond.Value))
}

func (s *GormStore[T, M]) find(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]*T, error) {
	var out []*T
	err := s.transaction(ctx, op, func(tx *gorm.DB) error {
		q := tx.Scopes(db.OrderByID())
		if scope != nil {
			q = q.Scopes(scope)
		}
		var rows []*M
		if err := q.Find(&rows).Error; err != nil {
			return err
		}
		mapped, err := mapper.TryMapSlicePtr(rows, s.mapper.ToDomain)
		if err != nil {
			return err
		}
		out = mapped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes back only patch.Columns, then reloads the row.
func (s *GormStore[T, M]) Update(ctx context.Context, id uint, patch store.Patch[T]) (*T, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *T
	err := s.transaction(ctx, "update", func(tx *gorm.DB) error {
		model, err := s.first(tx, id)
		if err != nil || model == nil {
			return err
		}
		rec, err := s.mapper.ToDomain(model)
		if err != nil {
			return err
		}
		patch.Apply(rec)

		next := s.mapper.ToModel(rec)
		result := tx.Model(model).Select(patch.Columns).Updates(next)
		if result.Error != nil {
			return result.Error
		}

		reloaded, err := s.first(tx, id)
		if err != nil {
			return err
		}
		if reloaded == nil {
			return fmt.Errorf("%s %d vanished during update", s.entity, id)
		}
		updated, err = s.mapper.ToDomain(reloaded)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *GormStore[T, M]) Delete(ctx context.Context, id uint) (*T, error) {
	var deleted *T
	err := s.transaction(ctx, "delete", func(tx *gorm.DB) error {
		model, err := s.first(tx, id)
		if err != nil || model == nil {
			return err
		}
		if err := tx.Delete(model).Error; err != nil {
			return err
		}
		deleted, err = s.mapper.ToDomain(model)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Count returns the number of rows in the table.
func (s *GormStore[T, M]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.transaction(ctx, "count", func(tx *gorm.DB) error {
		return tx.Model(new(M)).Count(&n).Error
	})
	return n, err
}
