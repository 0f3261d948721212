package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/validate"
	"gorm.io/gorm"
)

// GenerateResetCode mints a numeric password-recovery code for the user with
// the given email and persists it with an expiration.
func GenerateResetCode(db *gorm.DB, email string, ttl time.Duration) (*models.ResetToken, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, types.NewNotFound("Usuario no encontrado")
	}

	// Retry on the unlikely collision with a live code.
	for attempt := 0; attempt < 5; attempt++ {
		code, err := randomCode()
		if err != nil {
			return nil, types.NewInternal("No se pudo generar el código")
		}
		token := models.ResetToken{
			Value:          code,
			DateExpiration: time.Now().Add(ttl),
			Used:           false,
			UserID:         user.ID,
		}
		err = db.Create(&token).Error
		if err == nil {
			return &token, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, types.NewInternal("Error al guardar el código")
		}
	}
	return nil, types.NewInternal("No se pudo generar el código")
}

// VerifyResetCode classifies a code three ways: valid (returns the user id),
// expired-but-recognized, or unrecognized. Consumed codes count as
// unrecognized.
func VerifyResetCode(db *gorm.DB, code int) (uint, error) {
	var token models.ResetToken
	if err := db.Where("value = ?", code).First(&token).Error; err != nil {
		return 0, types.NewValidation("Token inválido")
	}
	if token.Used {
		return 0, types.NewValidation("Token inválido")
	}
	if time.Now().After(token.DateExpiration) {
		return 0, types.NewGone("Token expirado")
	}
	return token.UserID, nil
}

// ResetPassword verifies the code, replaces the user's password and consumes
// the code, all in one transaction.
func ResetPassword(db *gorm.DB, code int, newPassword string) error {
	if !validate.Password(newPassword) {
		return types.NewValidation("La contraseña debe tener al menos 8 caracteres, una mayúscula y un número")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		userID, err := VerifyResetCode(tx, code)
		if err != nil {
			return err
		}

		digest, err := crypto.HashPassword(newPassword)
		if err != nil {
			return types.NewInternal("No se pudo procesar la contraseña")
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("hashed_password", digest).Error; err != nil {
			return types.NewInternal("Error al actualizar la contraseña")
		}
		if err := tx.Model(&models.ResetToken{}).Where("value = ?", code).
			Update("used", true).Error; err != nil {
			return types.NewInternal("Error al consumir el código")
		}
		return nil
	})
}

func randomCode() (int, error) {
	// Six digits, never leading-zero ambiguous: 100000..999999.
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}
