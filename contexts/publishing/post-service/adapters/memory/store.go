package memory

import (
	"context"
	"sort"
	"sync"

	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"
)

// Store is the in-memory Repository and AccountDirectory used by tests
// and local wiring. Authors and categories are seeded directly.
type Store struct {
	mu            sync.RWMutex
	postsByID     map[string]entities.Post
	authorsByID   map[string]ports.AccountRecord
	categorysByID map[string]ports.CategorySummary
}

func NewStore() *Store {
	return &Store{
		postsByID:     map[string]entities.Post{},
		authorsByID:   map[string]ports.AccountRecord{},
		categorysByID: map[string]ports.CategorySummary{},
	}
}

func (s *Store) SeedAuthor(record ports.AccountRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorsByID[record.ID] = record
}

func (s *Store) SeedCategory(category ports.CategorySummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categorysByID[category.ID] = category
}

func (s *Store) GetAccount(_ context.Context, id string) (ports.AccountRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.authorsByID[id]
	return record, ok, nil
}

func (s *Store) List(_ context.Context, filter ports.ListFilter) ([]ports.EnrichedPost, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := make([]entities.Post, 0, len(s.postsByID))
	for _, post := range s.postsByID {
		if !filter.IncludeSuspended && post.Status == entities.StatusSuspended {
			continue
		}
		matching = append(matching, post)
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].CreatedAt.Before(matching[j].CreatedAt)
	})
	total := int64(len(matching))

	if filter.Offset >= len(matching) {
		return nil, total, nil
	}
	matching = matching[filter.Offset:]
	if filter.Limit > 0 && len(matching) > filter.Limit {
		matching = matching[:filter.Limit]
	}

	items := make([]ports.EnrichedPost, 0, len(matching))
	for _, post := range matching {
		items = append(items, s.enrich(post))
	}
	return items, total, nil
}

func (s *Store) GetByID(_ context.Context, id string) (ports.EnrichedPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.postsByID[id]
	if !ok {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	return s.enrich(post), nil
}

func (s *Store) Create(_ context.Context, post entities.Post) (ports.EnrichedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authorsByID[post.AuthorID]; !ok {
		return ports.EnrichedPost{}, domainerrors.ErrAuthorNotFound
	}
	if _, ok := s.categorysByID[post.CategoryID]; !ok {
		return ports.EnrichedPost{}, domainerrors.ErrCategoryNotFound
	}
	s.postsByID[post.ID] = post
	return s.enrich(post), nil
}

func (s *Store) Update(_ context.Context, id string, patch entities.PostPatch) (ports.EnrichedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[id]
	if !ok {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	if patch.CategoryID != nil {
		if _, ok := s.categorysByID[*patch.CategoryID]; !ok {
			return ports.EnrichedPost{}, domainerrors.ErrCategoryNotFound
		}
		post.CategoryID = *patch.CategoryID
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		post.ImageURL = *patch.ImageURL
	}
	if patch.Status != nil {
		post.Status = entities.Status(*patch.Status)
	}
	s.postsByID[id] = post
	return s.enrich(post), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.postsByID[id]; !ok {
		return domainerrors.ErrPostNotFound
	}
	delete(s.postsByID, id)
	return nil
}

func (s *Store) IncrementLikes(_ context.Context, id string) (ports.EnrichedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[id]
	if !ok {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	post.LikesCount++
	s.postsByID[id] = post
	return s.enrich(post), nil
}

func (s *Store) IncrementShares(_ context.Context, id string) (ports.EnrichedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postsByID[id]
	if !ok {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	post.ShareCount++
	s.postsByID[id] = post
	return s.enrich(post), nil
}

// DeleteByAuthor mirrors the schema's ON DELETE CASCADE for account
// removal. It returns the IDs of the removed posts so dependent rows
// in other stores can be cascaded in turn.
func (s *Store) DeleteByAuthor(_ context.Context, authorID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	for id, post := range s.postsByID {
		if post.AuthorID == authorID {
			delete(s.postsByID, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (s *Store) enrich(post entities.Post) ports.EnrichedPost {
	author := s.authorsByID[post.AuthorID]
	category := s.categorysByID[post.CategoryID]
	return ports.EnrichedPost{
		Post: post,
		Author: ports.AuthorSummary{
			ID:   author.ID,
			Name: author.Name,
			Role: author.Role,
		},
		Category: category,
	}
}
