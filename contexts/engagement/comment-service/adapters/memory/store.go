package memory

import (
	"context"
	"sort"
	"sync"

	"inkwell/contexts/engagement/comment-service/domain/entities"
	domainerrors "inkwell/contexts/engagement/comment-service/domain/errors"
)

// Store keeps comments plus the referenced post/user id sets, so tests
// exercise the same reference checks the schema enforces.
type Store struct {
	mu           sync.RWMutex
	commentsByID map[string]entities.Comment
	knownPosts   map[string]struct{}
	knownUsers   map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		commentsByID: map[string]entities.Comment{},
		knownPosts:   map[string]struct{}{},
		knownUsers:   map[string]struct{}{},
	}
}

func (s *Store) SeedPost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knownPosts[id] = struct{}{}
}

func (s *Store) SeedUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knownUsers[id] = struct{}{}
}

func (s *Store) List(_ context.Context) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(entities.Comment) bool { return true }), nil
}

func (s *Store) ListByPost(_ context.Context, postID string) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(comment entities.Comment) bool { return comment.PostID == postID }), nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.commentsByID[id]
	if !ok {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return comment, nil
}

func (s *Store) Create(_ context.Context, comment entities.Comment) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.knownPosts[comment.PostID]; !ok {
		return entities.Comment{}, domainerrors.ErrPostNotFound
	}
	if _, ok := s.knownUsers[comment.UserID]; !ok {
		return entities.Comment{}, domainerrors.ErrUserNotFound
	}
	s.commentsByID[comment.ID] = comment
	return comment, nil
}

func (s *Store) Update(_ context.Context, id string, patch entities.CommentPatch) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentsByID[id]
	if !ok {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	if patch.PostID != nil {
		if _, ok := s.knownPosts[*patch.PostID]; !ok {
			return entities.Comment{}, domainerrors.ErrPostNotFound
		}
		comment.PostID = *patch.PostID
	}
	if patch.UserID != nil {
		if _, ok := s.knownUsers[*patch.UserID]; !ok {
			return entities.Comment{}, domainerrors.ErrUserNotFound
		}
		comment.UserID = *patch.UserID
	}
	if patch.Content != nil {
		comment.Content = *patch.Content
	}
	s.commentsByID[id] = comment
	return comment, nil
}

func (s *Store) Delete(_ context.Context, id string) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentsByID[id]
	if !ok {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	delete(s.commentsByID, id)
	return comment, nil
}

// DeleteByUser mirrors the schema's ON DELETE CASCADE from users to
// comments. The user id is also dropped from the reference set.
func (s *Store) DeleteByUser(_ context.Context, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, comment := range s.commentsByID {
		if comment.UserID == userID {
			delete(s.commentsByID, id)
			removed++
		}
	}
	delete(s.knownUsers, userID)
	return removed
}

// DeleteByPost mirrors the schema's ON DELETE CASCADE from posts to
// comments.
func (s *Store) DeleteByPost(_ context.Context, postID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, comment := range s.commentsByID {
		if comment.PostID == postID {
			delete(s.commentsByID, id)
			removed++
		}
	}
	delete(s.knownPosts, postID)
	return removed
}

func (s *Store) collect(match func(entities.Comment) bool) []entities.Comment {
	comments := make([]entities.Comment, 0, len(s.commentsByID))
	for _, comment := range s.commentsByID {
		if match(comment) {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}
