package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/engagement/comment-service/application"
	"inkwell/contexts/engagement/comment-service/domain/entities"
	"inkwell/contexts/engagement/comment-service/ports"
	httptransport "inkwell/contexts/engagement/comment-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCommentsHandler(ctx context.Context, postID string) (httptransport.CommentListResponse, error) {
	comments, err := h.Service.ListComments(ctx, postID)
	if err != nil {
		return httptransport.CommentListResponse{}, err
	}
	resp := httptransport.CommentListResponse{Status: "success"}
	resp.Data = make([]httptransport.CommentPayload, 0, len(comments))
	for _, comment := range comments {
		resp.Data = append(resp.Data, toPayload(comment))
	}
	return resp, nil
}

func (h Handler) GetCommentHandler(ctx context.Context, id string) (httptransport.CommentResponse, error) {
	comment, err := h.Service.GetComment(ctx, id)
	if err != nil {
		return httptransport.CommentResponse{}, err
	}
	return httptransport.CommentResponse{Status: "success", Data: toPayload(comment)}, nil
}

func (h Handler) CreateCommentHandler(ctx context.Context, req httptransport.CreateCommentRequest) (httptransport.CommentResponse, error) {
	comment, err := h.Service.CreateComment(ctx, ports.CreateRequest{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		return httptransport.CommentResponse{}, err
	}
	return httptransport.CommentResponse{Status: "success", Data: toPayload(comment)}, nil
}

func (h Handler) UpdateCommentHandler(ctx context.Context, id string, req httptransport.UpdateCommentRequest) (httptransport.CommentResponse, error) {
	comment, err := h.Service.UpdateComment(ctx, id, ports.UpdateRequest{
		Content: req.Content,
		PostID:  req.PostID,
		UserID:  req.UserID,
	})
	if err != nil {
		return httptransport.CommentResponse{}, err
	}
	return httptransport.CommentResponse{Status: "success", Data: toPayload(comment)}, nil
}

func (h Handler) DeleteCommentHandler(ctx context.Context, id string) (httptransport.CommentResponse, error) {
	comment, err := h.Service.DeleteComment(ctx, id)
	if err != nil {
		return httptransport.CommentResponse{}, err
	}
	return httptransport.CommentResponse{Status: "success", Data: toPayload(comment)}, nil
}

func toPayload(comment entities.Comment) httptransport.CommentPayload {
	return httptransport.CommentPayload{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
