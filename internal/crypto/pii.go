package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeyLen is the required PII key length in bytes.
const KeyLen = chacha20poly1305.KeySize

var (
	// ErrBadKey reports a PII key of the wrong length.
	ErrBadKey = errors.New("pii: key must be 32 bytes")
	// ErrMalformed reports ciphertext that cannot be decoded or authenticated.
	// Rows written before encryption was introduced trip this.
	ErrMalformed = errors.New("pii: malformed ciphertext")
)

// Cipher encrypts and decrypts short PII strings and image blobs with a
// process-wide static key. XChaCha20-Poly1305 with a random nonce per value.
type Cipher struct {
	key []byte
}

// NewCipher builds a Cipher from a 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeyLen {
		return nil, ErrBadKey
	}
	k := make([]byte, KeyLen)
	copy(k, key)
	return &Cipher{key: k}, nil
}

// EncryptBytes seals plaintext as nonce||ciphertext.
func (c *Cipher) EncryptBytes(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, nil)...)
	return out, nil
}

// DecryptBytes opens nonce||ciphertext. Returns ErrMalformed when the input is
// too short or fails authentication.
func (c *Cipher) DecryptBytes(data []byte) ([]byte, error) {
	if len(data) < chacha20poly1305.NonceSizeX {
		return nil, ErrMalformed
	}
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, err
	}
	nonce := data[:chacha20poly1305.NonceSizeX]
	ct := data[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, ErrMalformed
	}
	return plaintext, nil
}

// EncryptString seals a string as base64(nonce||ciphertext).
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	sealed, err := c.EncryptBytes([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString opens a base64(nonce||ciphertext) string.
func (c *Cipher) DecryptString(stored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", ErrMalformed
	}
	plaintext, err := c.DecryptBytes(raw)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// PIIValue is a stored PII field resolved at read time. Legacy marks rows that
// predate encryption and still carry plaintext.
type PIIValue struct {
	Value  string
	Legacy bool
}

// Open resolves a stored string field to its plaintext, classifying untouched
// legacy plaintext instead of failing on it.
func (c *Cipher) Open(stored string) PIIValue {
	plaintext, err := c.DecryptString(stored)
	if err != nil {
		return PIIValue{Value: stored, Legacy: true}
	}
	return PIIValue{Value: plaintext}
}

// OpenBytes resolves a stored blob to its plaintext bytes; legacy blobs are
// returned unchanged with legacy=true.
func (c *Cipher) OpenBytes(stored []byte) ([]byte, bool) {
	plaintext, err := c.DecryptBytes(stored)
	if err != nil {
		return stored, true
	}
	return plaintext, false
}
