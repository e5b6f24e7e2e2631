package bcryptadapter

import "golang.org/x/crypto/bcrypt"

const hashCost = 12

// Hasher implements ports.PasswordHasher with bcrypt.
type Hasher struct{}

func (Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (Hasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
