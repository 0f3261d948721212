package models

import (
	"time"
)

// Day is a weekday in a course schedule
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Valid reports whether the day is one of the known weekdays
func (d Day) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Course is a training course offered by the shelter. Capacity gates how many
// applicants are admitted.
type Course struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"type:text;not null" json:"description"`
	StartDate   Date        `gorm:"not null" json:"start_date"`
	EndDate     Date        `gorm:"not null" json:"end_date"`
	Price       float64     `gorm:"not null" json:"price"`
	Capacity    int         `gorm:"not null" json:"capacity"`
	Schedule    []Schedule  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"schedule,omitempty"`
	Applicants  []Applicant `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}

// TableName overrides the table name for Course
func (Course) TableName() string {
	return "course"
}

// Schedule is a weekly time slot of a course
type Schedule struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Day       Day    `gorm:"size:16;not null" json:"day"`
	StartHour string `gorm:"size:10;not null" json:"start_hour"`
	EndHour   string `gorm:"size:10;not null" json:"end_hour"`
	CourseID  uint   `gorm:"not null;index" json:"course_id"`
}

// TableName overrides the table name for Schedule
func (Schedule) TableName() string {
	return "schedule"
}
