package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CommentPayload struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateCommentRequest struct {
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
	PostID  *string `json:"postId,omitempty"`
	UserID  *string `json:"userId,omitempty"`
}

type CommentResponse struct {
	Status string         `json:"status"`
	Data   CommentPayload `json:"data"`
}

type CommentListResponse struct {
	Status string           `json:"status"`
	Data   []CommentPayload `json:"data"`
}
