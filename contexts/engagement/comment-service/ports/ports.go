package ports

import (
	"context"
	"time"

	"inkwell/contexts/engagement/comment-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Repository interface {
	List(ctx context.Context) ([]entities.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]entities.Comment, error)
	GetByID(ctx context.Context, id string) (entities.Comment, error)
	Create(ctx context.Context, comment entities.Comment) (entities.Comment, error)
	Update(ctx context.Context, id string, patch entities.CommentPatch) (entities.Comment, error)
	Delete(ctx context.Context, id string) (entities.Comment, error)
}

type CreateRequest struct {
	PostID  string
	UserID  string
	Content string
}

type UpdateRequest struct {
	Content *string
	PostID  *string
	UserID  *string
}
