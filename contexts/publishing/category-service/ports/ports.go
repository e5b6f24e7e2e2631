package ports

import (
	"context"

	"inkwell/contexts/publishing/category-service/domain/entities"
)

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Repository interface {
	List(ctx context.Context) ([]entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	Create(ctx context.Context, category entities.Category) (entities.Category, error)
	Rename(ctx context.Context, id string, name string) (entities.Category, error)
	Delete(ctx context.Context, id string) (entities.Category, error)
}
