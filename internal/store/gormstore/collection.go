// Package gormstore backs store.Collection with gorm, on postgres in
// production and sqlite locally.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/store"
)

type Collection[T any] struct {
	db          *gorm.DB
	ownerColumn string
	orderBy     string
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewOwned returns a collection scoped by the owner_id column.
func NewOwned[T any](db *gorm.DB, orderBy string) *Collection[T] {
	return &Collection[T]{db: db, ownerColumn: "owner_id", orderBy: orderBy}
}

// NewKeyedByOwner returns a collection whose primary key is the owner id.
func NewKeyedByOwner[T any](db *gorm.DB) *Collection[T] {
	return &Collection[T]{db: db, ownerColumn: "id"}
}

// NewCatalog returns a collection shared by every owner.
func NewCatalog[T any](db *gorm.DB, orderBy string) *Collection[T] {
	return &Collection[T]{db: db, orderBy: orderBy}
}

func (c *Collection[T]) scoped(ctx context.Context, owner string) *gorm.DB {
	q := c.db.WithContext(ctx)
	if owner != "" && c.ownerColumn != "" {
		q = q.Where(c.ownerColumn+" = ?", owner)
	}
	return q
}

func (c *Collection[T]) List(ctx context.Context, owner string) ([]*T, error) {
	records := make([]*T, 0)
	q := c.scoped(ctx, owner)
	if c.orderBy != "" {
		q = q.Order(c.orderBy)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return records, nil
}

func (c *Collection[T]) Insert(ctx context.Context, record *T) error {
	if err := c.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// Update loads one record, lets apply mutate it and saves it back inside a
// single transaction. An id that does not belong to owner is not found.
func (c *Collection[T]) Update(ctx context.Context, owner, id string, apply func(*T) error) (*T, error) {
	var record T
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("id = ?", id)
		if owner != "" && c.ownerColumn != "" && c.ownerColumn != "id" {
			q = q.Where(c.ownerColumn+" = ?", owner)
		}
		if owner != "" && c.ownerColumn == "id" && owner != id {
			return internal.ErrRecordNotFound
		}

		if err := q.First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return internal.ErrRecordNotFound
			}
			return err
		}

		if err := apply(&record); err != nil {
			return err
		}

		return tx.Save(&record).Error
	})
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("update: %w", err)
	}
	return &record, nil
}
