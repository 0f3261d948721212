package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidation reports malformed client input (bad image encoding, oversized
// image, invalid email/password/hour format).
func NewValidation(message string) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: message, Type: "validation"}
}

// NewUnauthenticated reports a missing, invalid or expired bearer token.
func NewUnauthenticated(message string) *CustomError {
	return &CustomError{Code: fiber.StatusUnauthorized, Message: message, Type: "unauthenticated"}
}

// NewPermissionDenied reports a role outside the allow-list for the action.
func NewPermissionDenied(message string) *CustomError {
	return &CustomError{Code: fiber.StatusForbidden, Message: message, Type: "permission"}
}

// NewNotFound reports a missing entity by id.
func NewNotFound(message string) *CustomError {
	return &CustomError{Code: fiber.StatusNotFound, Message: message, Type: "not_found"}
}

// NewConflict reports an integrity violation, a duplicate unique field,
// exceeded capacity or a lost adopt/unadopt race.
func NewConflict(message string) *CustomError {
	return &CustomError{Code: fiber.StatusConflict, Message: message, Type: "conflict"}
}

// NewGone reports a recognized but expired resource (reset codes).
func NewGone(message string) *CustomError {
	return &CustomError{Code: fiber.StatusGone, Message: message, Type: "gone"}
}

// NewInternal reports an unexpected storage or infrastructure failure.
func NewInternal(message string) *CustomError {
	return &CustomError{Code: fiber.StatusInternalServerError, Message: message, Type: "internal"}
}

// IsNotFound reports whether err carries the not_found taxonomy type.
func IsNotFound(err error) bool {
	return isType(err, "not_found")
}

// IsConflict reports whether err carries the conflict taxonomy type.
func IsConflict(err error) bool {
	return isType(err, "conflict")
}

// IsValidation reports whether err carries the validation taxonomy type.
func IsValidation(err error) bool {
	return isType(err, "validation")
}

func isType(err error, errorType string) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type == errorType
	}
	return false
}
