package services

import (
	"encoding/base64"

	"github.com/huellitas/shelter-backend/internal/types"
)

// DecodeImage decodes a base64 payload and enforces the size cap. An empty
// payload is valid and yields nil bytes.
func DecodeImage(encoded string, maxBytes int) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, types.NewValidation("Invalid image encoding")
	}
	if len(data) > maxBytes {
		return nil, types.NewValidation("Invalid image size")
	}
	return data, nil
}
