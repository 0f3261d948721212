package services

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"gorm.io/gorm"
)

// IssueAccessToken creates a signed HS256 JWT for the given username.
func IssueAccessToken(signKey []byte, username string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        uuid.NewString(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(signKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// VerifyAccessToken checks signature and expiry and returns the subject.
// Every failure collapses to the same unauthenticated error; no detail leaks.
func VerifyAccessToken(signKey []byte, tokenString string) (string, error) {
	unauthenticated := types.NewUnauthenticated("Could not validate credentials")

	tok, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, unauthenticated
		}
		return signKey, nil
	})
	if err != nil || !tok.Valid {
		return "", unauthenticated
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", unauthenticated
	}
	return claims.Subject, nil
}

// CurrentUser resolves a bearer Authorization header value to its user row.
func CurrentUser(db *gorm.DB, signKey []byte, authorization string) (*models.User, error) {
	unauthenticated := types.NewUnauthenticated("Could not validate credentials")

	tokenString, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || tokenString == "" {
		return nil, unauthenticated
	}

	username, err := VerifyAccessToken(signKey, tokenString)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, unauthenticated
	}
	return &user, nil
}
