package ports

import (
	"context"
	"time"

	"inkwell/contexts/publishing/post-service/domain/entities"
)

const (
	RoleUser    = "user"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
	RoleDemo    = "demo"
)

// Caller is the verified identity attached to a request; the zero value
// is anonymous.
type Caller struct {
	ID     string
	Email  string
	Role   string
	Status string
}

func (c Caller) Anonymous() bool {
	return c.ID == ""
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanPublish reports whether the caller's role may create posts. The demo
// role is accepted here even though it is not an assignable role.
func (c Caller) CanPublish() bool {
	switch c.Role {
	case RoleCreator, RoleAdmin, RoleDemo:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type AuthorSummary struct {
	ID   string
	Name string
	Role string
}

type CategorySummary struct {
	ID   string
	Name string
}

// EnrichedPost joins the post with its author and category summaries.
type EnrichedPost struct {
	Post     entities.Post
	Author   AuthorSummary
	Category CategorySummary
}

// ListFilter narrows the listing window. Suspended posts appear only when
// IncludeSuspended is set (admin asking for status=all).
type ListFilter struct {
	IncludeSuspended bool
	Limit            int
	Offset           int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]EnrichedPost, int64, error)
	GetByID(ctx context.Context, id string) (EnrichedPost, error)
	Create(ctx context.Context, post entities.Post) (EnrichedPost, error)
	Update(ctx context.Context, id string, patch entities.PostPatch) (EnrichedPost, error)
	Delete(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (EnrichedPost, error)
	IncrementShares(ctx context.Context, id string) (EnrichedPost, error)
}

// AccountRecord is the slice of an account the policy needs for the fresh
// suspension check on create.
type AccountRecord struct {
	ID     string
	Name   string
	Role   string
	Status string
}

// AccountDirectory reads the stored account, not the token claims.
type AccountDirectory interface {
	GetAccount(ctx context.Context, id string) (AccountRecord, bool, error)
}

type CreateRequest struct {
	Title      string
	Content    string
	ImageURL   string
	CategoryID string
}

type UpdateRequest struct {
	Title      *string
	Content    *string
	ImageURL   *string
	Status     *string
	CategoryID *string
}

// PageInfo is the pagination envelope returned alongside listing data.
type PageInfo struct {
	Total      int64
	Limit      int
	Offset     int
	HasMore    bool
	TotalPages int
}

type PostPage struct {
	Items []EnrichedPost
	Page  PageInfo
}
