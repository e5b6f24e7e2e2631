package entities

import "time"

type Role string

const (
	RoleUser    Role = "user"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Account is the stored identity. PasswordHash never leaves the context:
// outward views are built by the application layer without it.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	CreatedAt    time.Time
}

// AccountPatch is a partial update: nil fields are left untouched by the
// repository. Password changes arrive pre-hashed.
type AccountPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
	Status       *string
}

func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Email == nil &&
		p.PasswordHash == nil &&
		p.Role == nil &&
		p.Status == nil
}
