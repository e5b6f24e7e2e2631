package entities

import "time"

type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt time.Time
}

// CommentPatch is a partial update: nil fields are left untouched.
type CommentPatch struct {
	Content *string
	PostID  *string
	UserID  *string
}

func (p CommentPatch) IsEmpty() bool {
	return p.Content == nil && p.PostID == nil && p.UserID == nil
}
