package services

import (
	"errors"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"gorm.io/gorm"
)

// DogInput is the payload for creating a dog in any of the three tables.
// Image arrives base64-encoded and is decoded by the handler.
type DogInput struct {
	ID           uint   `json:"id"`
	IDChip       string `json:"id_chip"`
	Name         string `json:"name"`
	About        string `json:"about"`
	Age          int    `json:"age"`
	IsVaccinated bool   `json:"is_vaccinated"`
	Image        string `json:"image,omitempty"`
	Gender       string `json:"gender"`
	EntryDate    models.Date `json:"entry_date"`
	IsSterilized bool   `json:"is_sterilized"`
	IsDewormed   bool   `json:"is_dewormed"`
	Operation    string `json:"operation"`
}

// Profile builds the shared attribute set, with the decoded image attached.
func (in DogInput) Profile(image []byte) models.DogProfile {
	return models.DogProfile{
		ID:           in.ID,
		IDChip:       in.IDChip,
		Name:         in.Name,
		About:        in.About,
		Age:          in.Age,
		IsVaccinated: in.IsVaccinated,
		Image:        image,
		Gender:       in.Gender,
		EntryDate:    in.EntryDate,
		IsSterilized: in.IsSterilized,
		IsDewormed:   in.IsDewormed,
		Operation:    in.Operation,
	}
}

// DogUpdateInput carries a partial update; nil fields keep their previous
// value.
type DogUpdateInput struct {
	IDChip       *string      `json:"id_chip"`
	Name         *string      `json:"name"`
	About        *string      `json:"about"`
	Age          *int         `json:"age"`
	IsVaccinated *bool        `json:"is_vaccinated"`
	Image        *string      `json:"image"`
	Gender       *string      `json:"gender"`
	EntryDate    *models.Date `json:"entry_date"`
	IsSterilized *bool        `json:"is_sterilized"`
	IsDewormed   *bool        `json:"is_dewormed"`
	Operation    *string      `json:"operation"`
}

func (in DogUpdateInput) apply(p *models.DogProfile, image []byte) {
	if in.IDChip != nil {
		p.IDChip = *in.IDChip
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.About != nil {
		p.About = *in.About
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.IsVaccinated != nil {
		p.IsVaccinated = *in.IsVaccinated
	}
	if image != nil {
		p.Image = image
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.EntryDate != nil {
		p.EntryDate = *in.EntryDate
	}
	if in.IsSterilized != nil {
		p.IsSterilized = *in.IsSterilized
	}
	if in.IsDewormed != nil {
		p.IsDewormed = *in.IsDewormed
	}
	if in.Operation != nil {
		p.Operation = *in.Operation
	}
}

func createConflict(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return types.NewConflict(message)
	}
	return types.NewInternal(err.Error())
}

// CreateStaticDog inserts a permanent-resident dog.
func CreateStaticDog(db *gorm.DB, input DogInput, image []byte) error {
	dog := models.StaticDog{DogProfile: input.Profile(image)}
	if err := db.Create(&dog).Error; err != nil {
		return createConflict(err, "Ya existe")
	}
	return nil
}

// ListStaticDogs returns all permanent-resident dogs.
func ListStaticDogs(db *gorm.DB) ([]models.StaticDog, error) {
	var dogs []models.StaticDog
	if err := db.Order("id").Find(&dogs).Error; err != nil {
		return nil, types.NewInternal(err.Error())
	}
	return dogs, nil
}

// GetStaticDog returns one permanent-resident dog by id.
func GetStaticDog(db *gorm.DB, dogID uint) (*models.StaticDog, error) {
	var dog models.StaticDog
	if err := db.First(&dog, dogID).Error; err != nil {
		return nil, types.NewNotFound("No se encontraron perros estáticos")
	}
	return &dog, nil
}

// UpdateStaticDog merges the provided fields into the stored row.
func UpdateStaticDog(db *gorm.DB, dogID uint, input DogUpdateInput, image []byte) error {
	var dog models.StaticDog
	if err := db.First(&dog, dogID).Error; err != nil {
		return types.NewNotFound("No se encontraron perros estáticos")
	}
	input.apply(&dog.DogProfile, image)
	if err := db.Save(&dog).Error; err != nil {
		return createConflict(err, "Ya existe")
	}
	return nil
}

// DeleteStaticDog removes a permanent-resident dog.
func DeleteStaticDog(db *gorm.DB, dogID uint) error {
	result := db.Delete(&models.StaticDog{}, dogID)
	if result.Error != nil {
		return types.NewInternal(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("No se encontraron perros estáticos")
	}
	return nil
}

// CreateAdoptionDog inserts a dog into the adoption pool.
func CreateAdoptionDog(db *gorm.DB, input DogInput, image []byte) error {
	dog := models.AdoptionDog{DogProfile: input.Profile(image)}
	if err := db.Create(&dog).Error; err != nil {
		return createConflict(err, "Ya existe")
	}
	return nil
}

// ListAdoptionDogs returns the adoption pool.
func ListAdoptionDogs(db *gorm.DB) ([]models.AdoptionDog, error) {
	var dogs []models.AdoptionDog
	if err := db.Order("id").Find(&dogs).Error; err != nil {
		return nil, types.NewInternal(err.Error())
	}
	return dogs, nil
}

// GetAdoptionDog returns one pool dog by id.
func GetAdoptionDog(db *gorm.DB, dogID uint) (*models.AdoptionDog, error) {
	var dog models.AdoptionDog
	if err := db.First(&dog, dogID).Error; err != nil {
		return nil, types.NewNotFound("No se encontraron perros de adopcion")
	}
	return &dog, nil
}

// UpdateAdoptionDog merges the provided fields into the stored row.
func UpdateAdoptionDog(db *gorm.DB, dogID uint, input DogUpdateInput, image []byte) error {
	var dog models.AdoptionDog
	if err := db.First(&dog, dogID).Error; err != nil {
		return types.NewNotFound("No se encontraron perros de adopcion")
	}
	input.apply(&dog.DogProfile, image)
	if err := db.Save(&dog).Error; err != nil {
		return createConflict(err, "Ya existe")
	}
	return nil
}

// DeleteAdoptionDog removes a dog from the adoption pool.
func DeleteAdoptionDog(db *gorm.DB, dogID uint) error {
	result := db.Delete(&models.AdoptionDog{}, dogID)
	if result.Error != nil {
		return types.NewInternal(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("No se encontraron perros de adopcion")
	}
	return nil
}

// ListAdoptedDogs returns all adopted dogs with their owner loaded and
// decrypted.
func ListAdoptedDogs(db *gorm.DB, cipher *crypto.Cipher) ([]models.AdoptedDog, error) {
	var dogs []models.AdoptedDog
	if err := db.Preload("Owner").Order("id").Find(&dogs).Error; err != nil {
		return nil, types.NewInternal(err.Error())
	}
	for i := range dogs {
		openOwner(cipher, &dogs[i].Owner)
	}
	return dogs, nil
}

// GetAdoptedDog returns one adopted dog with owner and visits loaded. Owner
// PII comes back decrypted.
func GetAdoptedDog(db *gorm.DB, cipher *crypto.Cipher, dogID uint) (*models.AdoptedDog, error) {
	var dog models.AdoptedDog
	if err := db.Preload("Owner").Preload("Visits").First(&dog, dogID).Error; err != nil {
		return nil, types.NewNotFound("No se encontraron perros adoptados")
	}
	openOwner(cipher, &dog.Owner)
	return &dog, nil
}

// UpdateAdoptedDog merges the provided fields into the stored row. The owner
// link and adoption date are workflow state and cannot be edited here.
func UpdateAdoptedDog(db *gorm.DB, dogID uint, input DogUpdateInput, image []byte) error {
	var dog models.AdoptedDog
	if err := db.First(&dog, dogID).Error; err != nil {
		return types.NewNotFound("No se encontraron perros adoptados")
	}
	input.apply(&dog.DogProfile, image)
	if err := db.Save(&dog).Error; err != nil {
		return createConflict(err, "Ya existe")
	}
	return nil
}
