package repository

import (
	"context"
	"errors"
	"fmt"
	"timetable/domain"

	"gorm.io/gorm"
)

// referenceRepository is the shared gorm CRUD for the reference
// entities. The resource name feeds NotFoundError messages.
type referenceRepository[T any] struct {
	db       *gorm.DB
	resource string
}

func NewReferenceRepository[T any](db *gorm.DB, resource string) domain.ReferenceRepo[T] {
	return &referenceRepository[T]{
		db:       db,
		resource: resource,
	}
}

func (rr *referenceRepository[T]) Create(ctx context.Context, item *T) error {
	if err := rr.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("could not insert %s: %w", rr.resource, err)
	}
	return nil
}

func (rr *referenceRepository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var items []T
	if err := rr.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("could not get %ss: %w", rr.resource, err)
	}
	return &items, nil
}

func (rr *referenceRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var item T
	err := rr.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Resource: rr.resource, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get %s: %w", rr.resource, err)
	}
	return &item, nil
}

func (rr *referenceRepository[T]) Update(ctx context.Context, id int, item *T) (*T, error) {
	existing, err := rr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Updates with a struct skips zero-valued fields, so absent payload
	// fields leave the stored values alone.
	if err := rr.db.WithContext(ctx).Model(existing).Updates(item).Error; err != nil {
		return nil, fmt.Errorf("could not update %s: %w", rr.resource, err)
	}

	return rr.GetByID(ctx, id)
}

func (rr *referenceRepository[T]) Delete(ctx context.Context, id int) error {
	result := rr.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("could not delete %s: %w", rr.resource, result.Error)
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Resource: rr.resource, ID: id}
	}
	return nil
}
