package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"
	"inkwell/internal/shared/validation"
)

// Service implements the post lifecycle policy: visibility-filtered
// listing, creation gated by role and fresh account status, and
// author-or-admin mutation.
type Service struct {
	Posts    ports.Repository
	Accounts ports.AccountDirectory
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Logger   *slog.Logger

	// FilterSingleReads extends the listing visibility filter to
	// single-post reads. Off by default: single reads are unfiltered.
	FilterSingleReads bool
}

// ListPosts hides suspended posts unless an admin explicitly asked for
// status=all. Ordered by creation time ascending.
func (s Service) ListPosts(ctx context.Context, caller ports.Caller, page validation.Page, statusFilter string) (ports.PostPage, error) {
	if page.Limit < 1 {
		page.Limit = validation.DefaultPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	includeSuspended := caller.IsAdmin() && strings.EqualFold(strings.TrimSpace(statusFilter), "all")

	items, total, err := s.Posts.List(ctx, ports.ListFilter{
		IncludeSuspended: includeSuspended,
		Limit:            page.Limit,
		Offset:           page.Offset,
	})
	if err != nil {
		return ports.PostPage{}, err
	}

	totalPages := int(total) / page.Limit
	if int(total)%page.Limit != 0 {
		totalPages++
	}
	return ports.PostPage{
		Items: items,
		Page: ports.PageInfo{
			Total:      total,
			Limit:      page.Limit,
			Offset:     page.Offset,
			HasMore:    int64(page.Offset+len(items)) < total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s Service) GetPost(ctx context.Context, caller ports.Caller, id string) (ports.EnrichedPost, error) {
	if !validation.ValidUUID(id) {
		return ports.EnrichedPost{}, validation.NewFieldError("id", "invalid post ID format")
	}
	item, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return ports.EnrichedPost{}, err
	}
	if s.FilterSingleReads && item.Post.Status == entities.StatusSuspended && !caller.IsAdmin() {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	return item, nil
}

// CreatePost re-reads the caller's account from the store: a token issued
// before a suspension must not publish.
func (s Service) CreatePost(ctx context.Context, caller ports.Caller, req ports.CreateRequest) (ports.EnrichedPost, error) {
	if caller.Anonymous() {
		return ports.EnrichedPost{}, domainerrors.ErrUnauthenticated
	}
	if !caller.CanPublish() {
		return ports.EnrichedPost{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" || req.CategoryID == "" {
		return ports.EnrichedPost{}, validation.NewFieldError("body", "title, content, and categoryId are required")
	}
	if !validation.ValidTitle(req.Title) {
		return ports.EnrichedPost{}, validation.NewFieldError("title", "must be 3-200 characters")
	}
	if !validation.ValidContent(req.Content) {
		return ports.EnrichedPost{}, validation.NewFieldError("content", "must be 10-5000 characters")
	}
	if !validation.ValidImageURL(req.ImageURL) {
		return ports.EnrichedPost{}, validation.NewFieldError("imageUrl", "invalid image URL")
	}
	if !validation.ValidUUID(req.CategoryID) {
		return ports.EnrichedPost{}, validation.NewFieldError("categoryId", "invalid categoryId format")
	}

	account, found, err := s.Accounts.GetAccount(ctx, caller.ID)
	if err != nil {
		return ports.EnrichedPost{}, err
	}
	if !found {
		return ports.EnrichedPost{}, domainerrors.ErrAuthorNotFound
	}
	if account.Status == string(entities.StatusSuspended) {
		return ports.EnrichedPost{}, domainerrors.ErrAccountSuspended
	}

	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.EnrichedPost{}, err
	}
	created, err := s.Posts.Create(ctx, entities.Post{
		ID:         id,
		Title:      strings.TrimSpace(req.Title),
		Content:    strings.TrimSpace(req.Content),
		ImageURL:   req.ImageURL,
		AuthorID:   caller.ID,
		CategoryID: req.CategoryID,
		Status:     entities.StatusActive,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return ports.EnrichedPost{}, err
	}
	s.log().Info("post created",
		"event", "post_created",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", created.Post.ID,
		"author_id", caller.ID,
	)
	return created, nil
}

// UpdatePost loads the post before the ownership decision, so a missing
// post reads as not-found even to a caller who would be forbidden.
func (s Service) UpdatePost(ctx context.Context, caller ports.Caller, id string, req ports.UpdateRequest) (ports.EnrichedPost, error) {
	if caller.Anonymous() {
		return ports.EnrichedPost{}, domainerrors.ErrUnauthenticated
	}
	if !validation.ValidUUID(id) {
		return ports.EnrichedPost{}, validation.NewFieldError("id", "invalid post ID format")
	}

	existing, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return ports.EnrichedPost{}, err
	}
	if !caller.IsAdmin() && caller.ID != existing.Post.AuthorID {
		return ports.EnrichedPost{}, domainerrors.ErrForbidden
	}

	patch := entities.PostPatch{}
	if req.Title != nil {
		if !validation.ValidTitle(*req.Title) {
			return ports.EnrichedPost{}, validation.NewFieldError("title", "must be 3-200 characters")
		}
		trimmed := strings.TrimSpace(*req.Title)
		patch.Title = &trimmed
	}
	if req.Content != nil {
		if !validation.ValidContent(*req.Content) {
			return ports.EnrichedPost{}, validation.NewFieldError("content", "must be 10-5000 characters")
		}
		trimmed := strings.TrimSpace(*req.Content)
		patch.Content = &trimmed
	}
	if req.ImageURL != nil {
		if !validation.ValidImageURL(*req.ImageURL) {
			return ports.EnrichedPost{}, validation.NewFieldError("imageUrl", "invalid image URL")
		}
		patch.ImageURL = req.ImageURL
	}
	if req.Status != nil {
		if !validation.ValidStatus(*req.Status) {
			return ports.EnrichedPost{}, validation.NewFieldError("status", "status must be 'active' or 'suspended'")
		}
		patch.Status = req.Status
	}
	if req.CategoryID != nil {
		if !validation.ValidUUID(*req.CategoryID) {
			return ports.EnrichedPost{}, validation.NewFieldError("categoryId", "invalid categoryId format")
		}
		patch.CategoryID = req.CategoryID
	}
	if patch.IsEmpty() {
		return ports.EnrichedPost{}, domainerrors.ErrNoFields
	}

	return s.Posts.Update(ctx, id, patch)
}

func (s Service) DeletePost(ctx context.Context, caller ports.Caller, id string) (string, error) {
	if caller.Anonymous() {
		return "", domainerrors.ErrUnauthenticated
	}
	if !validation.ValidUUID(id) {
		return "", validation.NewFieldError("id", "invalid post ID format")
	}

	existing, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !caller.IsAdmin() && caller.ID != existing.Post.AuthorID {
		return "", domainerrors.ErrForbidden
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return "", err
	}
	s.log().Info("post deleted",
		"event", "post_deleted",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", id,
		"actor_id", caller.ID,
	)
	return id, nil
}

func (s Service) LikePost(ctx context.Context, caller ports.Caller, id string) (ports.EnrichedPost, error) {
	if caller.Anonymous() {
		return ports.EnrichedPost{}, domainerrors.ErrUnauthenticated
	}
	if !validation.ValidUUID(id) {
		return ports.EnrichedPost{}, validation.NewFieldError("id", "invalid post ID format")
	}
	return s.Posts.IncrementLikes(ctx, id)
}

func (s Service) SharePost(ctx context.Context, caller ports.Caller, id string) (ports.EnrichedPost, error) {
	if caller.Anonymous() {
		return ports.EnrichedPost{}, domainerrors.ErrUnauthenticated
	}
	if !validation.ValidUUID(id) {
		return ports.EnrichedPost{}, validation.NewFieldError("id", "invalid post ID format")
	}
	return s.Posts.IncrementShares(ctx, id)
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
