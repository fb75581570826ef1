package store

import "context"

// Store defines the persistence operations every entity store supports.
// Concrete implementations live in infrastructure/persistence.
type Store[T any] interface {
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Save(ctx context.Context, entity T) (T, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	DeleteBy(ctx context.Context, options ...Option) error
}
