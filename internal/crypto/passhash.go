// Package crypto implements password hashing and PII encryption at rest.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword verifies password against a bcrypt digest.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
