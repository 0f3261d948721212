package models

import (
	"time"
)

// Visit is a follow-up check on an adopted dog. Evidence holds the encrypted
// photo bytes; deleting the adopted dog cascades its visits.
type Visit struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitDate    Date      `gorm:"not null;index" json:"visit_date"`
	Evidence     Blob      `json:"-"`
	Observations string    `gorm:"size:255" json:"observations"`
	AdoptedDogID uint      `gorm:"not null;index" json:"adopted_dog_id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName overrides the table name for Visit
func (Visit) TableName() string {
	return "visit"
}
