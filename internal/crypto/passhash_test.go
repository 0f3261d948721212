package crypto

import (
	"testing"
)

func TestHashVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("SecurePassword123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "SecurePassword123" {
		t.Fatalf("digest equals plaintext")
	}
	if !VerifyPassword("SecurePassword123", digest) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword("WrongPassword123", digest) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword("", digest) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	a, _ := HashPassword("SecurePassword123")
	b, _ := HashPassword("SecurePassword123")
	if a == b {
		t.Fatalf("two digests of the same password are equal, missing salt")
	}
}
