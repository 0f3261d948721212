package services

import (
	"log"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"gorm.io/gorm"
)

// VisitInput is the payload for creating a follow-up visit. Evidence arrives
// base64-encoded and is decoded by the handler before this call.
type VisitInput struct {
	VisitDate    models.Date `json:"visit_date"`
	Evidence     string      `json:"evidence,omitempty"`
	Observations string      `json:"observations"`
	AdoptedDogID uint        `json:"adopted_dog_id"`
}

// VisitUpdateInput carries a partial update; nil fields keep their previous
// value.
type VisitUpdateInput struct {
	VisitDate    *models.Date `json:"visit_date"`
	Evidence     *string      `json:"evidence"`
	Observations *string      `json:"observations"`
}

// CreateVisit records a visit for an existing adopted dog. Evidence bytes are
// encrypted at rest.
func CreateVisit(db *gorm.DB, cipher *crypto.Cipher, input VisitInput, evidence []byte) (*models.Visit, error) {
	var dog models.AdoptedDog
	if err := db.First(&dog, input.AdoptedDogID).Error; err != nil {
		return nil, types.NewNotFound("No se encontro al perro adoptado")
	}

	visit := models.Visit{
		VisitDate:    input.VisitDate,
		Observations: input.Observations,
		AdoptedDogID: input.AdoptedDogID,
	}
	if len(evidence) > 0 {
		sealed, err := cipher.EncryptBytes(evidence)
		if err != nil {
			return nil, types.NewInternal("No se pudo cifrar la evidencia")
		}
		visit.Evidence = sealed
	}

	if err := db.Create(&visit).Error; err != nil {
		return nil, types.NewInternal("Error al crear la visita")
	}
	return &visit, nil
}

// ListVisits returns all visits.
func ListVisits(db *gorm.DB) ([]models.Visit, error) {
	var visits []models.Visit
	if err := db.Order("id").Find(&visits).Error; err != nil {
		return nil, types.NewInternal("Error al leer las visitas")
	}
	return visits, nil
}

// ListVisitsByDog returns the visits of one adopted dog.
func ListVisitsByDog(db *gorm.DB, adoptedDogID uint) ([]models.Visit, error) {
	var visits []models.Visit
	if err := db.Where("adopted_dog_id = ?", adoptedDogID).Order("id").Find(&visits).Error; err != nil {
		return nil, types.NewInternal("Error al leer las visitas")
	}
	return visits, nil
}

// GetVisit returns one visit by id.
func GetVisit(db *gorm.DB, visitID uint) (*models.Visit, error) {
	var visit models.Visit
	if err := db.First(&visit, visitID).Error; err != nil {
		return nil, types.NewNotFound("Visita no encontrada")
	}
	return &visit, nil
}

// VisitEvidence returns the decrypted evidence image of a visit.
func VisitEvidence(db *gorm.DB, cipher *crypto.Cipher, visitID uint) ([]byte, error) {
	visit, err := GetVisit(db, visitID)
	if err != nil {
		return nil, err
	}
	if len(visit.Evidence) == 0 {
		return nil, types.NewNotFound("Imagen no encontrada")
	}
	plain, legacy := cipher.OpenBytes(visit.Evidence)
	if legacy {
		log.Printf("visit %d carries unencrypted evidence, needs migration", visit.ID)
	}
	return plain, nil
}

// UpdateVisit merges the provided fields into the stored row; new evidence is
// re-encrypted.
func UpdateVisit(db *gorm.DB, cipher *crypto.Cipher, visitID uint, input VisitUpdateInput, evidence []byte) error {
	var visit models.Visit
	if err := db.First(&visit, visitID).Error; err != nil {
		return types.NewNotFound("Visita no encontrada")
	}

	if input.VisitDate != nil {
		visit.VisitDate = *input.VisitDate
	}
	if input.Observations != nil {
		visit.Observations = *input.Observations
	}
	if evidence != nil {
		sealed, err := cipher.EncryptBytes(evidence)
		if err != nil {
			return types.NewInternal("No se pudo cifrar la evidencia")
		}
		visit.Evidence = sealed
	}

	if err := db.Save(&visit).Error; err != nil {
		return types.NewInternal("Error al actualizar la visita")
	}
	return nil
}

// DeleteVisit removes a visit.
func DeleteVisit(db *gorm.DB, visitID uint) error {
	result := db.Delete(&models.Visit{}, visitID)
	if result.Error != nil {
		return types.NewInternal("Error al eliminar la visita")
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("Visita no encontrada")
	}
	return nil
}
