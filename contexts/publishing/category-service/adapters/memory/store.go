package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"inkwell/contexts/publishing/category-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/category-service/domain/errors"
)

type Store struct {
	mu             sync.RWMutex
	categoriesByID map[string]entities.Category
}

func NewStore() *Store {
	return &Store{
		categoriesByID: map[string]entities.Category{},
	}
}

func (s *Store) List(_ context.Context) ([]entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]entities.Category, 0, len(s.categoriesByID))
	for _, category := range s.categoriesByID {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categoriesByID[id]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	return category, nil
}

func (s *Store) Create(_ context.Context, category entities.Category) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categoriesByID {
		if strings.EqualFold(existing.Name, category.Name) {
			return entities.Category{}, domainerrors.ErrNameTaken
		}
	}
	s.categoriesByID[category.ID] = category
	return category, nil
}

func (s *Store) Rename(_ context.Context, id string, name string) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categoriesByID[id]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	for otherID, other := range s.categoriesByID {
		if otherID != id && strings.EqualFold(other.Name, name) {
			return entities.Category{}, domainerrors.ErrNameTaken
		}
	}
	category.Name = name
	s.categoriesByID[id] = category
	return category, nil
}

func (s *Store) Delete(_ context.Context, id string) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categoriesByID[id]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	delete(s.categoriesByID, id)
	return category, nil
}
