package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a plaintext password against a stored hash.
// Compare returns nil when they match and a non-nil error otherwise.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// BcryptVerifier is the production PasswordVerifier, backed by bcrypt.
type BcryptVerifier struct{}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
