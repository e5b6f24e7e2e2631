package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/publishing/post-service/application"
	"inkwell/contexts/publishing/post-service/ports"
	httptransport "inkwell/contexts/publishing/post-service/transport/http"
	"inkwell/internal/shared/validation"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListPostsHandler(
	ctx context.Context,
	caller ports.Caller,
	page validation.Page,
	statusFilter string,
) (httptransport.PostListResponse, error) {
	result, err := h.Service.ListPosts(ctx, caller, page, statusFilter)
	if err != nil {
		return httptransport.PostListResponse{}, err
	}
	resp := httptransport.PostListResponse{Status: "success"}
	resp.Data = make([]httptransport.PostPayload, 0, len(result.Items))
	for _, item := range result.Items {
		resp.Data = append(resp.Data, toPayload(item))
	}
	resp.Pagination = httptransport.PaginationPayload{
		Total:      result.Page.Total,
		Limit:      result.Page.Limit,
		Offset:     result.Page.Offset,
		HasMore:    result.Page.HasMore,
		TotalPages: result.Page.TotalPages,
	}
	return resp, nil
}

func (h Handler) GetPostHandler(ctx context.Context, caller ports.Caller, id string) (httptransport.PostResponse, error) {
	item, err := h.Service.GetPost(ctx, caller, id)
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return httptransport.PostResponse{Status: "success", Data: toPayload(item)}, nil
}

func (h Handler) CreatePostHandler(
	ctx context.Context,
	caller ports.Caller,
	req httptransport.CreatePostRequest,
) (httptransport.PostResponse, error) {
	item, err := h.Service.CreatePost(ctx, caller, ports.CreateRequest{
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return httptransport.PostResponse{Status: "success", Data: toPayload(item)}, nil
}

func (h Handler) UpdatePostHandler(
	ctx context.Context,
	caller ports.Caller,
	id string,
	req httptransport.UpdatePostRequest,
) (httptransport.PostResponse, error) {
	item, err := h.Service.UpdatePost(ctx, caller, id, ports.UpdateRequest{
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		Status:     req.Status,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return httptransport.PostResponse{Status: "success", Data: toPayload(item)}, nil
}

func (h Handler) DeletePostHandler(ctx context.Context, caller ports.Caller, id string) (httptransport.DeletePostResponse, error) {
	deleted, err := h.Service.DeletePost(ctx, caller, id)
	if err != nil {
		return httptransport.DeletePostResponse{}, err
	}
	resp := httptransport.DeletePostResponse{Status: "success"}
	resp.Data.Deleted = deleted
	return resp, nil
}

func (h Handler) LikePostHandler(ctx context.Context, caller ports.Caller, id string) (httptransport.PostResponse, error) {
	item, err := h.Service.LikePost(ctx, caller, id)
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return httptransport.PostResponse{Status: "success", Data: toPayload(item)}, nil
}

func (h Handler) SharePostHandler(ctx context.Context, caller ports.Caller, id string) (httptransport.PostResponse, error) {
	item, err := h.Service.SharePost(ctx, caller, id)
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return httptransport.PostResponse{Status: "success", Data: toPayload(item)}, nil
}

func toPayload(item ports.EnrichedPost) httptransport.PostPayload {
	return httptransport.PostPayload{
		ID:         item.Post.ID,
		Title:      item.Post.Title,
		Content:    item.Post.Content,
		ImageURL:   item.Post.ImageURL,
		Status:     string(item.Post.Status),
		LikesCount: item.Post.LikesCount,
		ShareCount: item.Post.ShareCount,
		CreatedAt:  item.Post.CreatedAt.UTC().Format(time.RFC3339),
		Author: httptransport.AuthorPayload{
			ID:   item.Author.ID,
			Name: item.Author.Name,
			Role: item.Author.Role,
		},
		Category: httptransport.CategoryPayload{
			ID:   item.Category.ID,
			Name: item.Category.Name,
		},
	}
}
