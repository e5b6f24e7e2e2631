package httpserver

import (
	"context"
	"errors"
	"net/http"

	accounterrors "inkwell/contexts/identity/account-service/domain/errors"
	accountports "inkwell/contexts/identity/account-service/ports"
	accounthttp "inkwell/contexts/identity/account-service/transport/http"
	"inkwell/internal/shared/validation"

	"github.com/go-chi/chi/v5"
)

func (s *Server) registerAccountRoutes() {
	s.router.Route("/users", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Post("/demo", s.handleDemoLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.optionalAuth)
			r.Get("/", s.handleListAccounts)
			r.Get("/{user_id}", s.handleGetAccount)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Put("/{user_id}", s.handleUpdateAccount)
			r.Delete("/{user_id}", s.handleDeleteAccount)
			r.Put("/becomecreator/{user_id}", s.handleBecomeCreator)
		})
	})
}

func accountCaller(ctx context.Context) accountports.Caller {
	claims := claimsFromContext(ctx)
	if claims == nil {
		return accountports.Caller{}
	}
	return accountports.Caller{
		ID:     claims.ID,
		Email:  claims.Email,
		Role:   claims.Role,
		Status: claims.Status,
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.SignupHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDemoLogin(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accounts.Handler.DemoLoginHandler(r.Context())
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accounts.Handler.ListAccountsHandler(r.Context())
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accounts.Handler.GetAccountHandler(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.UpdateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.UpdateAccountHandler(r.Context(), accountCaller(r.Context()), chi.URLParam(r, "user_id"), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accounts.Handler.DeleteAccountHandler(r.Context(), accountCaller(r.Context()), chi.URLParam(r, "user_id"))
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBecomeCreator(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accounts.Handler.BecomeCreatorHandler(r.Context(), accountCaller(r.Context()), chi.URLParam(r, "user_id"))
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeAccountError(w, http.StatusBadRequest, "validation_failed", fieldErr.Error())
	case errors.Is(err, accounterrors.ErrUnauthenticated):
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, accounterrors.ErrAccountSuspended):
		writeAccountError(w, http.StatusForbidden, "account_suspended", err.Error())
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, accounterrors.ErrEmailTaken):
		writeAccountError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, accounterrors.ErrNoFields):
		writeAccountError(w, http.StatusBadRequest, "no_fields", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
