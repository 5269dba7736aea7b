package domain

import "context"

// ReferenceRepo is the shared CRUD contract for the reference entities
// (institutions, groups, teachers, classrooms, subjects, time slots).
// These are plain I/O wrappers around the relational store.
type ReferenceRepo[T any] interface {
	Create(ctx context.Context, item *T) error
	GetAll(ctx context.Context) (*[]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Update(ctx context.Context, id int, item *T) (*T, error)
	Delete(ctx context.Context, id int) error
}

type ReferenceUseCase[T any] interface {
	CreateUC(ctx context.Context, item *T) error
	GetAllUC(ctx context.Context) (*[]T, error)
	GetByIDUC(ctx context.Context, id int) (*T, error)
	UpdateUC(ctx context.Context, id int, item *T) (*T, error)
	DeleteUC(ctx context.Context, id int) error
}
