package httpserver

import (
	"errors"
	"net/http"

	commenterrors "inkwell/contexts/engagement/comment-service/domain/errors"
	commenthttp "inkwell/contexts/engagement/comment-service/transport/http"
	"inkwell/internal/shared/validation"

	"github.com/go-chi/chi/v5"
)

func (s *Server) registerCommentRoutes() {
	s.router.Route("/comments", func(r chi.Router) {
		r.Use(s.optionalAuth)
		r.Get("/", s.handleListComments)
		r.Get("/{comment_id}", s.handleGetComment)
		r.Post("/", s.handleCreateComment)
		r.Put("/{comment_id}", s.handleUpdateComment)
		r.Delete("/{comment_id}", s.handleDeleteComment)
	})
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.comments.Handler.ListCommentsHandler(r.Context(), r.URL.Query().Get("postId"))
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	resp, err := s.comments.Handler.GetCommentHandler(r.Context(), chi.URLParam(r, "comment_id"))
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req commenthttp.CreateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.comments.Handler.CreateCommentHandler(r.Context(), req)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req commenthttp.UpdateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.comments.Handler.UpdateCommentHandler(r.Context(), chi.URLParam(r, "comment_id"), req)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	resp, err := s.comments.Handler.DeleteCommentHandler(r.Context(), chi.URLParam(r, "comment_id"))
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCommentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, commenthttp.ErrorResponse{Code: code, Message: message})
}

func writeCommentDomainError(w http.ResponseWriter, err error) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeCommentError(w, http.StatusBadRequest, "validation_failed", fieldErr.Error())
	case errors.Is(err, commenterrors.ErrForbidden):
		writeCommentError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, commenterrors.ErrCommentNotFound):
		writeCommentError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, commenterrors.ErrPostNotFound):
		writeCommentError(w, http.StatusNotFound, "post_not_found", err.Error())
	case errors.Is(err, commenterrors.ErrUserNotFound):
		writeCommentError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, commenterrors.ErrNoFields):
		writeCommentError(w, http.StatusBadRequest, "no_fields", err.Error())
	default:
		writeCommentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
