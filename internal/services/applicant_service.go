package services

import (
	"log"

	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/validate"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ApplicantInput is the payload for applying to a course. Image arrives
// base64-encoded and is decoded by the handler.
type ApplicantInput struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Cellphone string           `json:"cellphone"`
	Image     string           `json:"image,omitempty"`
	CourseID  types.FlexUint64 `json:"course_id"`
}

// sealApplicant encrypts the PII fields in place before persisting.
func sealApplicant(cipher *crypto.Cipher, a *models.Applicant) error {
	for _, field := range []*string{&a.FirstName, &a.LastName, &a.Email, &a.Cellphone} {
		sealed, err := cipher.EncryptString(*field)
		if err != nil {
			return err
		}
		*field = sealed
	}
	return nil
}

// openApplicant decrypts the PII fields in place for responses.
func openApplicant(cipher *crypto.Cipher, a *models.Applicant) {
	legacy := false
	for _, field := range []*string{&a.FirstName, &a.LastName, &a.Email, &a.Cellphone} {
		v := cipher.Open(*field)
		legacy = legacy || v.Legacy
		*field = v.Value
	}
	if legacy {
		log.Printf("applicant %d carries legacy plaintext PII, needs migration", a.ID)
	}
}

// CountApplicantsByCourse returns the current enrollment and the course
// capacity.
func CountApplicantsByCourse(db *gorm.DB, courseID uint) (int64, int, error) {
	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return 0, 0, types.NewNotFound("Curso no encontrado")
	}

	var count int64
	if err := db.Model(&models.Applicant{}).
		Clauses(hints.CommentBefore("select", "capacity gate")).
		Where("course_id = ?", courseID).Count(&count).Error; err != nil {
		return 0, 0, types.NewInternal("Error al contar las solicitudes")
	}
	return count, course.Capacity, nil
}

// CreateApplicant admits one applicant to a course when there is room left.
// The capacity check and the insert are not covered by a lock; concurrent
// admissions can race past capacity (last commit wins).
func CreateApplicant(db *gorm.DB, cipher *crypto.Cipher, input ApplicantInput, image []byte) (*models.Applicant, error) {
	if !validate.Email(input.Email) {
		return nil, types.NewValidation("Email inválido")
	}

	courseID := uint(input.CourseID.Uint64())
	count, capacity, err := CountApplicantsByCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if count >= int64(capacity) {
		return nil, types.NewConflict("No hay más cupos")
	}

	applicant := models.Applicant{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Cellphone: input.Cellphone,
		Image:     image,
		CourseID:  courseID,
	}
	if err := sealApplicant(cipher, &applicant); err != nil {
		return nil, types.NewInternal("No se pudo cifrar los datos del solicitante")
	}
	if err := db.Create(&applicant).Error; err != nil {
		return nil, types.NewInternal("Error al registrar la solicitud")
	}
	return &applicant, nil
}

// ListApplicantsByCourse returns the applicants of one course with PII
// decrypted.
func ListApplicantsByCourse(db *gorm.DB, cipher *crypto.Cipher, courseID uint) ([]models.Applicant, error) {
	var applicants []models.Applicant
	if err := db.Where("course_id = ?", courseID).Order("id").Find(&applicants).Error; err != nil {
		return nil, types.NewInternal("Error al leer las solicitudes")
	}
	for i := range applicants {
		openApplicant(cipher, &applicants[i])
	}
	return applicants, nil
}

// GetApplicant returns one applicant with PII decrypted.
func GetApplicant(db *gorm.DB, cipher *crypto.Cipher, applicantID uint) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := db.First(&applicant, applicantID).Error; err != nil {
		return nil, types.NewNotFound("No hay solicitantes")
	}
	openApplicant(cipher, &applicant)
	return &applicant, nil
}

// DeleteApplicant removes an enrollment record.
func DeleteApplicant(db *gorm.DB, applicantID uint) error {
	result := db.Delete(&models.Applicant{}, applicantID)
	if result.Error != nil {
		return types.NewInternal("Error al eliminar la solicitud")
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("Solicitud no encontrada")
	}
	return nil
}
