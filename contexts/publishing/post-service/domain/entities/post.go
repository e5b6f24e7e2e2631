package entities

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Post is the stored record; author/category enrichment lives in the
// ports layer, joined in by the repository.
type Post struct {
	ID         string
	Title      string
	Content    string
	ImageURL   string
	AuthorID   string
	CategoryID string
	Status     Status
	LikesCount int
	ShareCount int
	CreatedAt  time.Time
}

// PostPatch is a partial update: nil fields are left untouched.
type PostPatch struct {
	Title      *string
	Content    *string
	ImageURL   *string
	Status     *string
	CategoryID *string
}

func (p PostPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Content == nil &&
		p.ImageURL == nil &&
		p.Status == nil &&
		p.CategoryID == nil
}
