package models

import (
	"time"
)

// Applicant is a course enrollment record. FirstName, LastName, Email and
// Cellphone hold ciphertext at rest.
type Applicant struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:512;not null" json:"first_name"`
	LastName  string    `gorm:"size:512;not null" json:"last_name"`
	Email     string    `gorm:"size:512;not null" json:"email"`
	Cellphone string    `gorm:"size:512;not null" json:"cellphone"`
	Image     Blob      `json:"-"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	CreatedAt time.Time `json:"-"`
}

// TableName overrides the table name for Applicant
func (Applicant) TableName() string {
	return "applicant"
}
