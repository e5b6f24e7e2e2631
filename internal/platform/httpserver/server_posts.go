package httpserver

import (
	"context"
	"errors"
	"net/http"

	posterrors "inkwell/contexts/publishing/post-service/domain/errors"
	postports "inkwell/contexts/publishing/post-service/ports"
	posthttp "inkwell/contexts/publishing/post-service/transport/http"
	"inkwell/internal/shared/validation"

	"github.com/go-chi/chi/v5"
)

func (s *Server) registerPostRoutes() {
	s.router.Route("/posts", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.optionalAuth)
			r.Get("/", s.handleListPosts)
			r.Get("/{post_id}", s.handleGetPost)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreatePost)
			r.Put("/{post_id}", s.handleUpdatePost)
			r.Delete("/{post_id}", s.handleDeletePost)
			r.Post("/{post_id}/like", s.handleLikePost)
			r.Post("/{post_id}/share", s.handleSharePost)
		})
	})
}

func postCaller(ctx context.Context) postports.Caller {
	claims := claimsFromContext(ctx)
	if claims == nil {
		return postports.Caller{}
	}
	return postports.Caller{
		ID:     claims.ID,
		Email:  claims.Email,
		Role:   claims.Role,
		Status: claims.Status,
	}
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := validation.ParsePage(query.Get("limit"), query.Get("offset"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	resp, err := s.posts.Handler.ListPostsHandler(r.Context(), postCaller(r.Context()), page, query.Get("status"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.posts.Handler.GetPostHandler(r.Context(), postCaller(r.Context()), chi.URLParam(r, "post_id"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req posthttp.CreatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.posts.Handler.CreatePostHandler(r.Context(), postCaller(r.Context()), req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req posthttp.UpdatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.posts.Handler.UpdatePostHandler(r.Context(), postCaller(r.Context()), chi.URLParam(r, "post_id"), req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.posts.Handler.DeletePostHandler(r.Context(), postCaller(r.Context()), chi.URLParam(r, "post_id"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.posts.Handler.LikePostHandler(r.Context(), postCaller(r.Context()), chi.URLParam(r, "post_id"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSharePost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.posts.Handler.SharePostHandler(r.Context(), postCaller(r.Context()), chi.URLParam(r, "post_id"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePostError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, posthttp.ErrorResponse{Code: code, Message: message})
}

func writePostDomainError(w http.ResponseWriter, err error) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writePostError(w, http.StatusBadRequest, "validation_failed", fieldErr.Error())
	case errors.Is(err, posterrors.ErrUnauthenticated):
		writePostError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, posterrors.ErrAccountSuspended):
		writePostError(w, http.StatusForbidden, "account_suspended", err.Error())
	case errors.Is(err, posterrors.ErrForbidden):
		writePostError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, posterrors.ErrPostNotFound):
		writePostError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, posterrors.ErrCategoryNotFound):
		writePostError(w, http.StatusNotFound, "category_not_found", err.Error())
	case errors.Is(err, posterrors.ErrAuthorNotFound):
		writePostError(w, http.StatusNotFound, "author_not_found", err.Error())
	case errors.Is(err, posterrors.ErrNoFields):
		writePostError(w, http.StatusBadRequest, "no_fields", err.Error())
	default:
		writePostError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
