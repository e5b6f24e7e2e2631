package httpserver

import (
	"errors"
	"net/http"

	categoryerrors "inkwell/contexts/publishing/category-service/domain/errors"
	categoryhttp "inkwell/contexts/publishing/category-service/transport/http"
	"inkwell/internal/shared/validation"

	"github.com/go-chi/chi/v5"
)

func (s *Server) registerCategoryRoutes() {
	s.router.Route("/categories", func(r chi.Router) {
		r.Use(s.optionalAuth)
		r.Get("/", s.handleListCategories)
		r.Get("/{category_id}", s.handleGetCategory)
		r.Post("/", s.handleCreateCategory)
		r.Put("/{category_id}", s.handleUpdateCategory)
		r.Delete("/{category_id}", s.handleDeleteCategory)
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := s.categories.Handler.ListCategoriesHandler(r.Context())
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.categories.Handler.GetCategoryHandler(r.Context(), chi.URLParam(r, "category_id"))
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryhttp.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.categories.Handler.CreateCategoryHandler(r.Context(), req)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryhttp.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.categories.Handler.UpdateCategoryHandler(r.Context(), chi.URLParam(r, "category_id"), req)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.categories.Handler.DeleteCategoryHandler(r.Context(), chi.URLParam(r, "category_id"))
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCategoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, categoryhttp.ErrorResponse{Code: code, Message: message})
}

func writeCategoryDomainError(w http.ResponseWriter, err error) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeCategoryError(w, http.StatusBadRequest, "validation_failed", fieldErr.Error())
	case errors.Is(err, categoryerrors.ErrForbidden):
		writeCategoryError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, categoryerrors.ErrCategoryNotFound):
		writeCategoryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, categoryerrors.ErrNameTaken):
		writeCategoryError(w, http.StatusConflict, "name_taken", err.Error())
	case errors.Is(err, categoryerrors.ErrCategoryInUse):
		writeCategoryError(w, http.StatusConflict, "category_in_use", err.Error())
	default:
		writeCategoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
