package services

import (
	"errors"
	"log"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"gorm.io/gorm"
)

// OwnerInput is the payload for creating an owner. Fields arrive in plaintext
// and are encrypted before persisting.
type OwnerInput struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Cellphone string `json:"cellphone"`
}

// OwnerUpdateInput carries a partial update; empty fields keep their previous
// value.
type OwnerUpdateInput struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Cellphone string `json:"cellphone"`
}

// sealOwner encrypts the PII fields in place. Every persist path goes through
// here; an owner row never carries plaintext direction or cellphone.
func sealOwner(cipher *crypto.Cipher, owner *models.Owner) error {
	direction, err := cipher.EncryptString(owner.Direction)
	if err != nil {
		return err
	}
	cellphone, err := cipher.EncryptString(owner.Cellphone)
	if err != nil {
		return err
	}
	owner.Direction = direction
	owner.Cellphone = cellphone
	return nil
}

// openOwner decrypts the PII fields in place for business use. Rows written
// before encryption decode as-is; the legacy state is logged, not hidden.
func openOwner(cipher *crypto.Cipher, owner *models.Owner) {
	direction := cipher.Open(owner.Direction)
	cellphone := cipher.Open(owner.Cellphone)
	if direction.Legacy || cellphone.Legacy {
		log.Printf("owner %d carries legacy plaintext PII, needs migration", owner.ID)
	}
	owner.Direction = direction.Value
	owner.Cellphone = cellphone.Value
}

// CreateOwner persists a new owner with encrypted PII.
func CreateOwner(db *gorm.DB, cipher *crypto.Cipher, input OwnerInput) (*models.Owner, error) {
	owner := models.Owner{
		Name:      input.Name,
		Direction: input.Direction,
		Cellphone: input.Cellphone,
	}
	if err := sealOwner(cipher, &owner); err != nil {
		return nil, types.NewInternal("No se pudo cifrar los datos del dueño")
	}
	if err := db.Create(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, types.NewConflict("Ya existe")
		}
		return nil, types.NewInternal("Error al crear el dueño")
	}
	return &owner, nil
}

// ListOwners returns all owners with PII decrypted.
func ListOwners(db *gorm.DB, cipher *crypto.Cipher) ([]models.Owner, error) {
	var owners []models.Owner
	if err := db.Order("id").Find(&owners).Error; err != nil {
		return nil, types.NewInternal("Error al leer los dueños")
	}
	for i := range owners {
		openOwner(cipher, &owners[i])
	}
	return owners, nil
}

// GetOwner returns one owner by id with PII decrypted.
func GetOwner(db *gorm.DB, cipher *crypto.Cipher, ownerID uint) (*models.Owner, error) {
	var owner models.Owner
	if err := db.First(&owner, ownerID).Error; err != nil {
		return nil, types.NewNotFound("Dueño no encontrado")
	}
	openOwner(cipher, &owner)
	return &owner, nil
}

// UpdateOwner decrypts the stored row, applies only the fields that differ
// from the current values, and re-encrypts the whole row before saving.
func UpdateOwner(db *gorm.DB, cipher *crypto.Cipher, ownerID uint, input OwnerUpdateInput) error {
	var owner models.Owner
	if err := db.First(&owner, ownerID).Error; err != nil {
		return types.NewNotFound("Dueño no encontrado")
	}
	openOwner(cipher, &owner)

	if input.Name != "" && input.Name != owner.Name {
		owner.Name = input.Name
	}
	if input.Direction != "" && input.Direction != owner.Direction {
		owner.Direction = input.Direction
	}
	if input.Cellphone != "" && input.Cellphone != owner.Cellphone {
		owner.Cellphone = input.Cellphone
	}

	if err := sealOwner(cipher, &owner); err != nil {
		return types.NewInternal("No se pudo cifrar los datos del dueño")
	}
	if err := db.Save(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return types.NewConflict("Ya existe")
		}
		return types.NewInternal("Error al actualizar el dueño")
	}
	return nil
}

// DeleteOwner removes an owner that has no adopted dogs left. Owners with
// dogs are deleted through the unadopt workflow, not directly.
func DeleteOwner(db *gorm.DB, ownerID uint) error {
	var count int64
	if err := db.Model(&models.AdoptedDog{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return types.NewInternal("Error al leer los perros adoptados")
	}
	if count > 0 {
		return types.NewConflict("El dueño tiene perros adoptados")
	}
	result := db.Delete(&models.Owner{}, ownerID)
	if result.Error != nil {
		return types.NewInternal("Error al eliminar el dueño")
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("Dueño no encontrado")
	}
	return nil
}
