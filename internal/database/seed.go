package database

import (
	"fmt"
	"log"

	"github.com/huellitas/shelter-backend/internal/config"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap administrator account when the configured
// username is not present. A fresh deployment is unusable without it since
// user creation itself is admin-gated.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	digest, err := crypto.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:       cfg.AdminUsername,
		HashedPassword: digest,
		Email:          cfg.AdminEmail,
		Role:           models.RoleAdmin,
		IsActive:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded admin user %q", cfg.AdminUsername)
	return nil
}
