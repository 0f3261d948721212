package services

import (
	"errors"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"gorm.io/gorm"
)

// The adoption workflow moves a dog between the pool table and the adopted
// table. The two rows never coexist for one id: each transition deletes one
// side and inserts the other inside a single transaction, so a lost race
// surfaces as a rolled-back conflict, never a partial state.

// AdoptDog moves a pool dog to the adopted set with a newly created owner.
func AdoptDog(db *gorm.DB, cipher *crypto.Cipher, dogID uint, adoptedDate models.Date, ownerInput OwnerInput) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var poolDog models.AdoptionDog
		if err := tx.First(&poolDog, dogID).Error; err != nil {
			return types.NewNotFound("No se encontraron perros de adopcion")
		}

		owner := models.Owner{
			Name:      ownerInput.Name,
			Direction: ownerInput.Direction,
			Cellphone: ownerInput.Cellphone,
		}
		if err := sealOwner(cipher, &owner); err != nil {
			return types.NewInternal("No se pudo cifrar los datos del dueño")
		}
		if err := tx.Create(&owner).Error; err != nil {
			return translateAdoptionErr(err)
		}

		adopted := poolDog.Adopt(adoptedDate, owner.ID)
		if err := tx.Create(&adopted).Error; err != nil {
			return translateAdoptionErr(err)
		}
		if err := tx.Delete(&models.AdoptionDog{}, dogID).Error; err != nil {
			return translateAdoptionErr(err)
		}
		return nil
	})
}

// AdoptDogExistingOwner is AdoptDog reusing an owner row instead of creating
// one.
func AdoptDogExistingOwner(db *gorm.DB, cipher *crypto.Cipher, dogID uint, adoptedDate models.Date, ownerID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var poolDog models.AdoptionDog
		if err := tx.First(&poolDog, dogID).Error; err != nil {
			return types.NewNotFound("No se encontraron perros de adopcion")
		}

		var owner models.Owner
		if err := tx.First(&owner, ownerID).Error; err != nil {
			return types.NewNotFound("Dueño no encontrado")
		}

		adopted := poolDog.Adopt(adoptedDate, owner.ID)
		if err := tx.Create(&adopted).Error; err != nil {
			return translateAdoptionErr(err)
		}
		if err := tx.Delete(&models.AdoptionDog{}, dogID).Error; err != nil {
			return translateAdoptionErr(err)
		}
		return nil
	})
}

// UnadoptDog returns an adopted dog to the pool. The owner is deleted when
// this was its last adopted dog, otherwise kept untouched (still encrypted).
// The dog's visits cascade with the adopted row.
func UnadoptDog(db *gorm.DB, dogID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var adopted models.AdoptedDog
		if err := tx.Preload("Owner").First(&adopted, dogID).Error; err != nil {
			return types.NewNotFound("No se encontraron perros adoptados")
		}

		poolDog := adopted.Unadopt()
		if err := tx.Create(&poolDog).Error; err != nil {
			return translateAdoptionErr(err)
		}
		if err := tx.Select("Visits").
			Delete(&models.AdoptedDog{DogProfile: models.DogProfile{ID: dogID}}).Error; err != nil {
			return translateAdoptionErr(err)
		}

		var remaining int64
		if err := tx.Model(&models.AdoptedDog{}).
			Where("owner_id = ?", adopted.OwnerID).Count(&remaining).Error; err != nil {
			return types.NewInternal("Error al leer los perros adoptados")
		}
		if remaining == 0 {
			if err := tx.Delete(&models.Owner{}, adopted.OwnerID).Error; err != nil {
				return translateAdoptionErr(err)
			}
		}
		return nil
	})
}

func translateAdoptionErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return types.NewConflict("Ya existe")
	}
	return types.NewInternal(err.Error())
}
