package models

import (
	"time"
)

// Owner is the adopter of one or more dogs. Direction and Cellphone hold
// ciphertext at rest; services decrypt on read and re-encrypt before persist.
type Owner struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:255;not null;index" json:"name"`
	Direction string `gorm:"size:512;not null" json:"direction"`
	Cellphone string `gorm:"size:512;not null" json:"cellphone"`

	AdoptedDogs []AdoptedDog `gorm:"foreignKey:OwnerID" json:"adopted_dogs,omitempty"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

// TableName overrides the table name for Owner
func (Owner) TableName() string {
	return "owner"
}
