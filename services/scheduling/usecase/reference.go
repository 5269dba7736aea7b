package usecase

import (
	"context"
	"time"
	"timetable/domain"
)

type referenceUC[T any] struct {
	repo    domain.ReferenceRepo[T]
	TimeOut time.Duration
}

func NewReferenceUseCase[T any](repo domain.ReferenceRepo[T], timeOut time.Duration) domain.ReferenceUseCase[T] {
	return &referenceUC[T]{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (rUC *referenceUC[T]) CreateUC(ctx context.Context, item *T) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.repo.Create(ctx, item)
}

func (rUC *referenceUC[T]) GetAllUC(ctx context.Context) (*[]T, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.repo.GetAll(ctx)
}

func (rUC *referenceUC[T]) GetByIDUC(ctx context.Context, id int) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.repo.GetByID(ctx, id)
}

func (rUC *referenceUC[T]) UpdateUC(ctx context.Context, id int, item *T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.repo.Update(ctx, id, item)
}

func (rUC *referenceUC[T]) DeleteUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	return rUC.repo.Delete(ctx, id)
}
