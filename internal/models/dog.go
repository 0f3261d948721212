package models

import (
	"time"
)

// DogProfile is the attribute set shared by the three dog tables.
// Ids are assigned by staff (chip registry numbers), not auto-incremented.
type DogProfile struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	IDChip       string `gorm:"size:255;index" json:"id_chip"`
	Name         string `gorm:"size:255;not null;index" json:"name"`
	About        string `gorm:"size:255;not null" json:"about"`
	Age          int    `gorm:"not null" json:"age"`
	IsVaccinated bool   `gorm:"not null;default:false" json:"is_vaccinated"`
	Image        Blob   `json:"-"`
	Gender       string `gorm:"size:32" json:"gender"`
	EntryDate    Date   `gorm:"index" json:"entry_date"`
	IsSterilized bool   `gorm:"not null;default:false" json:"is_sterilized"`
	IsDewormed   bool   `gorm:"not null;default:false" json:"is_dewormed"`
	Operation    string `gorm:"size:255" json:"operation"`
}

// StaticDog is a permanent resident of the shelter, never offered for adoption
type StaticDog struct {
	DogProfile
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for StaticDog
func (StaticDog) TableName() string {
	return "static_dogs"
}

// AdoptionDog is a dog currently in the adoption pool
type AdoptionDog struct {
	DogProfile
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for AdoptionDog
func (AdoptionDog) TableName() string {
	return "adoption_dogs"
}

// Adopt builds the AdoptedDog row that replaces this pool row. The caller is
// responsible for persisting both sides of the swap in one transaction.
func (d AdoptionDog) Adopt(adoptedDate Date, ownerID uint) AdoptedDog {
	return AdoptedDog{
		DogProfile:  d.DogProfile,
		AdoptedDate: adoptedDate,
		OwnerID:     ownerID,
	}
}

// AdoptedDog is a dog linked to an owner, no longer available for adoption
type AdoptedDog struct {
	DogProfile
	AdoptedDate Date      `gorm:"index" json:"adopted_date"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       Owner     `gorm:"constraint:OnDelete:CASCADE" json:"owner"`
	Visits      []Visit   `gorm:"foreignKey:AdoptedDogID;constraint:OnDelete:CASCADE" json:"visits,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName overrides the table name for AdoptedDog
func (AdoptedDog) TableName() string {
	return "adopted_dogs"
}

// Unadopt builds the AdoptionDog row that returns this dog to the pool,
// dropping the adoption date and the owner link.
func (d AdoptedDog) Unadopt() AdoptionDog {
	return AdoptionDog{DogProfile: d.DogProfile}
}
