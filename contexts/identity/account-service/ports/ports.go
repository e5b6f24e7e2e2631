package ports

import (
	"context"
	"time"

	"inkwell/contexts/identity/account-service/domain/entities"
)

// Caller is the verified identity attached to a request. The zero value
// means the request carried no usable token.
type Caller struct {
	ID     string
	Email  string
	Role   string
	Status string
}

func (c Caller) Anonymous() bool {
	return c.ID == ""
}

func (c Caller) IsAdmin() bool {
	return c.Role == string(entities.RoleAdmin)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PasswordHasher is a deliberately slow, salted hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

// TokenIssuer mints a bearer token for an account's current role/status.
type TokenIssuer interface {
	Issue(account entities.Account) (string, error)
}

type Repository interface {
	Create(ctx context.Context, account entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	Update(ctx context.Context, id string, patch entities.AccountPatch) (entities.Account, error)
	Delete(ctx context.Context, id string) (entities.Account, error)
}

// SignupRequest carries raw, unvalidated signup input.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// UpdateRequest is the raw partial-update input; Password is plaintext and
// is re-hashed by the service before it reaches the repository.
type UpdateRequest struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Status   *string
}

// AccountView is the outward representation: everything but the hash.
type AccountView struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Status    string
	CreatedAt time.Time
}

// AuthResult pairs an account view with a freshly issued token.
type AuthResult struct {
	Account AccountView
	Token   string
}
