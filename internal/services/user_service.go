package services

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/validate"
	"gorm.io/gorm"
)

// UserCreateInput is the payload for creating a staff account
type UserCreateInput struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// UserUpdateInput carries a partial profile update; empty fields keep their
// previous value
type UserUpdateInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Authenticate verifies username/password. Unknown user and wrong password
// return the identical error so callers cannot enumerate accounts.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	unauthorized := types.NewUnauthenticated("Incorrect username or password")

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, unauthorized
	}
	if !crypto.VerifyPassword(password, user.HashedPassword) {
		return nil, unauthorized
	}
	return &user, nil
}

// CreateUser validates and persists a new staff account.
func CreateUser(db *gorm.DB, input UserCreateInput) error {
	if !validate.Password(input.Password) {
		return types.NewValidation("La contraseña debe tener al menos 8 caracteres, una mayúscula y un número")
	}
	if !validate.Email(input.Email) {
		return types.NewValidation("Email inválido")
	}
	if !input.Role.Valid() {
		return types.NewValidation("Rol inválido")
	}

	digest, err := crypto.HashPassword(input.Password)
	if err != nil {
		return types.NewInternal("No se pudo procesar la contraseña")
	}

	user := models.User{
		Username:       input.Username,
		HashedPassword: digest,
		Email:          input.Email,
		Role:           input.Role,
		IsActive:       false,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return types.NewConflict("El username o email ya está en uso")
		}
		return types.NewInternal("Error al crear el usuario")
	}
	return nil
}

// GenerateUser derives credentials from an email and role: username is the
// role followed by six hex chars of md5(email), password is random. The plain
// password is returned once for email delivery and never stored.
func GenerateUser(db *gorm.DB, email string, role models.Role) (*models.User, string, error) {
	if !validate.Email(email) {
		return nil, "", types.NewValidation("Email inválido")
	}
	if !role.Valid() {
		return nil, "", types.NewValidation("Rol inválido")
	}

	emailHash := md5.Sum([]byte(email))
	username := string(role) + hex.EncodeToString(emailHash[:])[:6]

	password, err := randomPassword(12)
	if err != nil {
		return nil, "", types.NewInternal("No se pudo generar la contraseña")
	}
	digest, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", types.NewInternal("No se pudo procesar la contraseña")
	}

	user := models.User{
		Username:       username,
		HashedPassword: digest,
		Email:          email,
		Role:           role,
		IsActive:       false,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", types.NewConflict("El username o email ya está en uso")
		}
		return nil, "", types.NewInternal("Error al crear el usuario")
	}
	return &user, password, nil
}

// ListUsers returns all staff accounts.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, types.NewInternal("Error al leer los usuarios")
	}
	return users, nil
}

// UpdateUserInfo merges non-empty username/email changes into the account.
func UpdateUserInfo(db *gorm.DB, currentUsername string, input UserUpdateInput) error {
	var user models.User
	if err := db.Where("username = ?", currentUsername).First(&user).Error; err != nil {
		return types.NewNotFound("Usuario no encontrado")
	}

	if input.Username != "" && input.Username != user.Username {
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if !validate.Email(input.Email) {
			return types.NewValidation("Email inválido")
		}
		user.Email = input.Email
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return types.NewConflict("El username o email ya está en uso")
		}
		return types.NewInternal("Error al actualizar el usuario")
	}
	return nil
}

// UpdateUserPassword re-authenticates and replaces the password.
func UpdateUserPassword(db *gorm.DB, username, actualPassword, newPassword string) error {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return types.NewNotFound("Usuario no encontrado")
	}
	if !crypto.VerifyPassword(actualPassword, user.HashedPassword) {
		return types.NewUnauthenticated("Contraseña actual incorrecta")
	}
	if !validate.Password(newPassword) {
		return types.NewValidation("La contraseña debe tener al menos 8 caracteres, una mayúscula y un número")
	}

	digest, err := crypto.HashPassword(newPassword)
	if err != nil {
		return types.NewInternal("No se pudo procesar la contraseña")
	}
	if err := db.Model(&user).Update("hashed_password", digest).Error; err != nil {
		return types.NewInternal("Error al actualizar la contraseña")
	}
	return nil
}

// DeleteUser removes an account. Self-deletion is rejected.
func DeleteUser(db *gorm.DB, userID uint, currentUsername string) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return types.NewNotFound("Usuario no encontrado")
	}
	if user.Username == currentUsername {
		return types.NewPermissionDenied("No se puede eliminar el usuario actual")
	}
	if err := db.Delete(&user).Error; err != nil {
		return types.NewInternal("Error al eliminar el usuario")
	}
	return nil
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
