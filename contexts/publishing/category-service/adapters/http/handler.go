package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/publishing/category-service/application"
	"inkwell/contexts/publishing/category-service/domain/entities"
	httptransport "inkwell/contexts/publishing/category-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCategoriesHandler(ctx context.Context) (httptransport.CategoryListResponse, error) {
	categories, err := h.Service.ListCategories(ctx)
	if err != nil {
		return httptransport.CategoryListResponse{}, err
	}
	resp := httptransport.CategoryListResponse{Status: "success"}
	resp.Data = make([]httptransport.CategoryPayload, 0, len(categories))
	for _, category := range categories {
		resp.Data = append(resp.Data, toPayload(category))
	}
	return resp, nil
}

func (h Handler) GetCategoryHandler(ctx context.Context, id string) (httptransport.CategoryResponse, error) {
	category, err := h.Service.GetCategory(ctx, id)
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}
	return httptransport.CategoryResponse{Status: "success", Data: toPayload(category)}, nil
}

func (h Handler) CreateCategoryHandler(ctx context.Context, req httptransport.CategoryRequest) (httptransport.CategoryResponse, error) {
	category, err := h.Service.CreateCategory(ctx, req.Name)
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}
	return httptransport.CategoryResponse{Status: "success", Data: toPayload(category)}, nil
}

func (h Handler) UpdateCategoryHandler(ctx context.Context, id string, req httptransport.CategoryRequest) (httptransport.CategoryResponse, error) {
	category, err := h.Service.UpdateCategory(ctx, id, req.Name)
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}
	return httptransport.CategoryResponse{Status: "success", Data: toPayload(category)}, nil
}

func (h Handler) DeleteCategoryHandler(ctx context.Context, id string) (httptransport.CategoryResponse, error) {
	category, err := h.Service.DeleteCategory(ctx, id)
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}
	return httptransport.CategoryResponse{Status: "success", Data: toPayload(category)}, nil
}

func toPayload(category entities.Category) httptransport.CategoryPayload {
	return httptransport.CategoryPayload{ID: category.ID, Name: category.Name}
}
