package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/engagement/comment-service/domain/entities"
	domainerrors "inkwell/contexts/engagement/comment-service/domain/errors"
	"inkwell/contexts/engagement/comment-service/ports"
	"inkwell/internal/shared/validation"
)

// Service manages comments. Mutations are currently open to any caller;
// the routes sit behind optional auth so an ownership gate can be added
// here without rewiring.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) ListComments(ctx context.Context, postID string) ([]entities.Comment, error) {
	if postID == "" {
		return s.Repo.List(ctx)
	}
	if !validation.ValidUUID(postID) {
		return nil, validation.NewFieldError("postId", "invalid postId format")
	}
	return s.Repo.ListByPost(ctx, postID)
}

func (s Service) GetComment(ctx context.Context, id string) (entities.Comment, error) {
	if !validation.ValidUUID(id) {
		return entities.Comment{}, validation.NewFieldError("id", "invalid comment ID format")
	}
	return s.Repo.GetByID(ctx, id)
}

func (s Service) CreateComment(ctx context.Context, req ports.CreateRequest) (entities.Comment, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" || req.PostID == "" || req.UserID == "" {
		return entities.Comment{}, validation.NewFieldError("body", "content, postId, and userId are required")
	}
	if !validation.ValidCommentContent(req.Content) {
		return entities.Comment{}, validation.NewFieldError("content", "must be 1-1000 characters")
	}
	if !validation.ValidUUID(req.PostID) {
		return entities.Comment{}, validation.NewFieldError("postId", "invalid postId format")
	}
	if !validation.ValidUUID(req.UserID) {
		return entities.Comment{}, validation.NewFieldError("userId", "invalid userId format")
	}

	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return entities.Comment{}, err
	}
	created, err := s.Repo.Create(ctx, entities.Comment{
		ID:        id,
		PostID:    req.PostID,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: s.now(),
	})
	if err != nil {
		return entities.Comment{}, err
	}
	s.log().Info("comment created",
		"event", "comment_created",
		"module", "engagement/comment-service",
		"layer", "application",
		"comment_id", created.ID,
		"post_id", created.PostID,
	)
	return created, nil
}

func (s Service) UpdateComment(ctx context.Context, id string, req ports.UpdateRequest) (entities.Comment, error) {
	if !validation.ValidUUID(id) {
		return entities.Comment{}, validation.NewFieldError("id", "invalid comment ID format")
	}

	patch := entities.CommentPatch{}
	if req.Content != nil {
		trimmed := strings.TrimSpace(*req.Content)
		if !validation.ValidCommentContent(trimmed) {
			return entities.Comment{}, validation.NewFieldError("content", "must be 1-1000 characters")
		}
		patch.Content = &trimmed
	}
	if req.PostID != nil {
		if !validation.ValidUUID(*req.PostID) {
			return entities.Comment{}, validation.NewFieldError("postId", "invalid postId format")
		}
		patch.PostID = req.PostID
	}
	if req.UserID != nil {
		if !validation.ValidUUID(*req.UserID) {
			return entities.Comment{}, validation.NewFieldError("userId", "invalid userId format")
		}
		patch.UserID = req.UserID
	}
	if patch.IsEmpty() {
		return entities.Comment{}, domainerrors.ErrNoFields
	}

	return s.Repo.Update(ctx, id, patch)
}

func (s Service) DeleteComment(ctx context.Context, id string) (entities.Comment, error) {
	if !validation.ValidUUID(id) {
		return entities.Comment{}, validation.NewFieldError("id", "invalid comment ID format")
	}
	return s.Repo.Delete(ctx, id)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
