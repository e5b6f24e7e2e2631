package tokenadapter

import (
	"inkwell/contexts/identity/account-service/domain/entities"
	"inkwell/internal/platform/token"
)

// Issuer bridges the platform token codec into the context's TokenIssuer
// port.
type Issuer struct {
	Codec token.Codec
}

func (i Issuer) Issue(account entities.Account) (string, error) {
	return i.Codec.Issue(token.Claims{
		ID:     account.ID,
		Email:  account.Email,
		Role:   string(account.Role),
		Status: string(account.Status),
	})
}
