package application

import (
	"context"
	"log/slog"
	"strings"

	"inkwell/contexts/publishing/category-service/domain/entities"
	"inkwell/contexts/publishing/category-service/ports"
	"inkwell/internal/shared/validation"
)

// Service manages category reference data. Mutations are currently open
// to any caller; the routes sit behind optional auth so a role gate can
// be added here without rewiring.
type Service struct {
	Repo   ports.Repository
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return s.Repo.List(ctx)
}

func (s Service) GetCategory(ctx context.Context, id string) (entities.Category, error) {
	if !validation.ValidUUID(id) {
		return entities.Category{}, validation.NewFieldError("id", "invalid category ID format")
	}
	return s.Repo.GetByID(ctx, id)
}

func (s Service) CreateCategory(ctx context.Context, name string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return entities.Category{}, validation.NewFieldError("name", "must be 2-100 characters")
	}
	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return entities.Category{}, err
	}
	created, err := s.Repo.Create(ctx, entities.Category{ID: id, Name: name})
	if err != nil {
		return entities.Category{}, err
	}
	s.log().Info("category created",
		"event", "category_created",
		"module", "publishing/category-service",
		"layer", "application",
		"category_id", created.ID,
	)
	return created, nil
}

func (s Service) UpdateCategory(ctx context.Context, id string, name string) (entities.Category, error) {
	if !validation.ValidUUID(id) {
		return entities.Category{}, validation.NewFieldError("id", "invalid category ID format")
	}
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return entities.Category{}, validation.NewFieldError("name", "must be 2-100 characters")
	}
	return s.Repo.Rename(ctx, id, name)
}

func (s Service) DeleteCategory(ctx context.Context, id string) (entities.Category, error) {
	if !validation.ValidUUID(id) {
		return entities.Category{}, validation.NewFieldError("id", "invalid category ID format")
	}
	return s.Repo.Delete(ctx, id)
}

func (s Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
