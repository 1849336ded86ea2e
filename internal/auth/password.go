package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single admin credential pair. Either Password or
// PasswordHash (bcrypt) must be set; PasswordHash wins when both are.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

func (c Credentials) configured() bool {
	return c.Password != "" || c.PasswordHash != ""
}

// HashPassword hashes a plaintext password with the given cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// constantTimeEqual compares contents in constant time. Differing lengths
// return false immediately; length is not secret.
func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (c Credentials) match(username, password string) bool {
	if !c.configured() {
		return false
	}
	userOK := constantTimeEqual(username, c.Username)
	var passOK bool
	if c.PasswordHash != "" {
		passOK = ComparePassword(c.PasswordHash, password) == nil
	} else {
		passOK = constantTimeEqual(password, c.Password)
	}
	return userOK && passOK
}
