package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
	"inkwell/contexts/identity/account-service/ports"
	"inkwell/internal/shared/validation"
)

// Service implements the account lifecycle policy: signup, login, the demo
// path, admin maintenance and role elevation.
type Service struct {
	Repo      ports.Repository
	Hasher    ports.PasswordHasher
	Tokens    ports.TokenIssuer
	Clock     ports.Clock
	IDs       ports.IDGenerator
	DemoEmail string
	Logger    *slog.Logger
}

func (s Service) Signup(ctx context.Context, req ports.SignupRequest) (ports.AuthResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return ports.AuthResult{}, validation.NewFieldError("body", "name, email, and password are required")
	}
	if !validation.ValidName(req.Name) {
		return ports.AuthResult{}, validation.NewFieldError("name", "must be 2-100 characters (letters, spaces, hyphens, apostrophes only)")
	}
	if !validation.ValidEmail(req.Email) {
		return ports.AuthResult{}, validation.NewFieldError("email", "invalid email format")
	}
	if !validation.ValidPassword(req.Password) {
		return ports.AuthResult{}, validation.NewFieldError("password", "must be at least 8 characters with uppercase letter and number")
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return ports.AuthResult{}, err
	}
	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.AuthResult{}, err
	}

	created, err := s.Repo.Create(ctx, entities.Account{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entities.RoleUser,
		Status:       entities.StatusActive,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return ports.AuthResult{}, err
	}

	raw, err := s.Tokens.Issue(created)
	if err != nil {
		return ports.AuthResult{}, err
	}

	s.log().Info("account registered",
		"event", "account_registered",
		"module", "identity/account-service",
		"layer", "application",
		"account_id", created.ID,
	)
	return ports.AuthResult{Account: toView(created), Token: raw}, nil
}

// Login reports unknown email and wrong password identically so callers
// cannot probe for registered addresses. Suspension is reported explicitly
// and takes precedence over credential verification.
func (s Service) Login(ctx context.Context, email string, password string) (ports.AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return ports.AuthResult{}, validation.NewFieldError("body", "email and password are required")
	}
	if !validation.ValidEmail(email) {
		return ports.AuthResult{}, validation.NewFieldError("email", "invalid email format")
	}

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return ports.AuthResult{}, domainerrors.ErrInvalidCredentials
		}
		return ports.AuthResult{}, err
	}
	if account.Status == entities.StatusSuspended {
		return ports.AuthResult{}, domainerrors.ErrAccountSuspended
	}
	if !s.Hasher.Verify(account.PasswordHash, password) {
		return ports.AuthResult{}, domainerrors.ErrInvalidCredentials
	}

	raw, err := s.Tokens.Issue(account)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult{Account: toView(account), Token: raw}, nil
}

// DemoLogin authenticates the designated demo account without verifying a
// password.
func (s Service) DemoLogin(ctx context.Context) (ports.AuthResult, error) {
	account, err := s.Repo.GetByEmail(ctx, s.DemoEmail)
	if err != nil {
		return ports.AuthResult{}, err
	}
	if account.Status == entities.StatusSuspended {
		return ports.AuthResult{}, domainerrors.ErrAccountSuspended
	}
	raw, err := s.Tokens.Issue(account)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult{Account: toView(account), Token: raw}, nil
}

func (s Service) ListAccounts(ctx context.Context) ([]ports.AccountView, error) {
	accounts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toView(account))
	}
	return views, nil
}

func (s Service) GetAccount(ctx context.Context, id string) (ports.AccountView, error) {
	if !validation.ValidUUID(id) {
		return ports.AccountView{}, validation.NewFieldError("id", "invalid account ID format")
	}
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return ports.AccountView{}, err
	}
	return toView(account), nil
}

// UpdateAccount is admin-only. Only supplied fields change; a supplied
// password is re-hashed before storage.
func (s Service) UpdateAccount(ctx context.Context, caller ports.Caller, id string, req ports.UpdateRequest) (ports.AccountView, error) {
	if caller.Anonymous() {
		return ports.AccountView{}, domainerrors.ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return ports.AccountView{}, domainerrors.ErrForbidden
	}
	if !validation.ValidUUID(id) {
		return ports.AccountView{}, validation.NewFieldError("id", "invalid account ID format")
	}

	patch := entities.AccountPatch{}
	if req.Name != nil {
		if !validation.ValidName(*req.Name) {
			return ports.AccountView{}, validation.NewFieldError("name", "must be 2-100 characters")
		}
		patch.Name = req.Name
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !validation.ValidEmail(email) {
			return ports.AccountView{}, validation.NewFieldError("email", "invalid email format")
		}
		patch.Email = &email
	}
	if req.Password != nil {
		if !validation.ValidPassword(*req.Password) {
			return ports.AccountView{}, validation.NewFieldError("password", "must be at least 8 characters with uppercase and number")
		}
		hash, err := s.Hasher.Hash(*req.Password)
		if err != nil {
			return ports.AccountView{}, err
		}
		patch.PasswordHash = &hash
	}
	if req.Role != nil {
		if !validation.ValidRole(*req.Role) {
			return ports.AccountView{}, validation.NewFieldError("role", "invalid role")
		}
		patch.Role = req.Role
	}
	if req.Status != nil {
		if !validation.ValidStatus(*req.Status) {
			return ports.AccountView{}, validation.NewFieldError("status", "status must be 'active' or 'suspended'")
		}
		patch.Status = req.Status
	}
	if patch.IsEmpty() {
		return ports.AccountView{}, domainerrors.ErrNoFields
	}

	updated, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return ports.AccountView{}, err
	}
	s.log().Info("account updated",
		"event", "account_updated",
		"module", "identity/account-service",
		"layer", "application",
		"account_id", updated.ID,
		"actor_id", caller.ID,
	)
	return toView(updated), nil
}

// BecomeCreator elevates the target account to the creator role and
// re-issues a token carrying the new role, so the next request reflects
// the change without re-login. Admins may elevate anyone; everyone else
// only themselves.
func (s Service) BecomeCreator(ctx context.Context, caller ports.Caller, id string) (ports.AuthResult, error) {
	if caller.Anonymous() {
		return ports.AuthResult{}, domainerrors.ErrUnauthenticated
	}
	if !validation.ValidUUID(id) {
		return ports.AuthResult{}, validation.NewFieldError("id", "invalid account ID format")
	}
	if !caller.IsAdmin() && caller.ID != id {
		return ports.AuthResult{}, domainerrors.ErrForbidden
	}

	role := string(entities.RoleCreator)
	updated, err := s.Repo.Update(ctx, id, entities.AccountPatch{Role: &role})
	if err != nil {
		return ports.AuthResult{}, err
	}
	raw, err := s.Tokens.Issue(updated)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult{Account: toView(updated), Token: raw}, nil
}

// DeleteAccount is admin-only; posts and comments owned by the account are
// removed by the store's referential cascade.
func (s Service) DeleteAccount(ctx context.Context, caller ports.Caller, id string) (ports.AccountView, error) {
	if caller.Anonymous() {
		return ports.AccountView{}, domainerrors.ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return ports.AccountView{}, domainerrors.ErrForbidden
	}
	if !validation.ValidUUID(id) {
		return ports.AccountView{}, validation.NewFieldError("id", "invalid account ID format")
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return ports.AccountView{}, err
	}
	s.log().Info("account deleted",
		"event", "account_deleted",
		"module", "identity/account-service",
		"layer", "application",
		"account_id", deleted.ID,
		"actor_id", caller.ID,
	)
	return toView(deleted), nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func toView(account entities.Account) ports.AccountView {
	return ports.AccountView{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      string(account.Role),
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
	}
}
