package models

import (
	"time"
)

// Role is the access level of a user account
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAuxiliar Role = "auxiliar"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAuxiliar
}

// User represents a staff account
type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string `gorm:"size:255;not null;uniqueIndex" json:"username"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role           Role   `gorm:"size:32;not null;index" json:"role"`
	IsActive       bool   `gorm:"not null;default:false" json:"is_active"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// ResetToken is a short-lived numeric password-recovery code. Single use.
type ResetToken struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Value          int       `gorm:"not null;uniqueIndex" json:"value"`
	DateExpiration time.Time `gorm:"not null" json:"date_expiration"`
	Used           bool      `gorm:"not null;default:false" json:"used"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time `json:"-"`
}

// TableName overrides the table name for ResetToken
func (ResetToken) TableName() string {
	return "auth_tokens"
}
