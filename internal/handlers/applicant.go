package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/utils"
	"gorm.io/gorm"
)

// ApplicantHandler handles course enrollment requests
type ApplicantHandler struct {
	DB            *gorm.DB
	Cipher        *crypto.Cipher
	MaxImageBytes int
	APIURL        string
}

// ApplicantResponse is an applicant with its image replaced by a link.
type ApplicantResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
	Image     string `json:"image"`
	CourseID  uint   `json:"course_id"`
}

func (h *ApplicantHandler) toResponse(a models.Applicant) ApplicantResponse {
	link := ""
	if len(a.Image) > 0 {
		link = imageURL(h.APIURL, "applicant", a.ID)
	}
	return ApplicantResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Cellphone: a.Cellphone,
		Image:     link,
		CourseID:  a.CourseID,
	}
}

// CreateApplicant handles POST /applicant/create/
// @Summary Apply to a course
// @Description Public endpoint; rejects full courses and oversized images
// @Tags Applicant
// @Accept json
// @Produce json
// @Param applicant body services.ApplicantInput true "New applicant"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /applicant/create/ [post]
func (h *ApplicantHandler) CreateApplicant(c *fiber.Ctx) error {
	var input services.ApplicantInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	image, err := services.DecodeImage(input.Image, h.MaxImageBytes)
	if err != nil {
		return err
	}
	if _, err := services.CreateApplicant(h.DB, h.Cipher, input, image); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Solicitud registrada")
}

// ListApplicantsByCourse handles GET /applicant/course/:course_id/all/
// @Summary List a course's applicants
// @Description PII is decrypted; images are replaced by download links
// @Tags Applicant
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} ApplicantResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applicant/course/{course_id}/all/ [get]
func (h *ApplicantHandler) ListApplicantsByCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "course_id")
	if err != nil {
		return err
	}
	applicants, err := services.ListApplicantsByCourse(h.DB, h.Cipher, courseID)
	if err != nil {
		return err
	}
	out := make([]ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		out = append(out, h.toResponse(a))
	}
	return utils.SuccessResponse(c, out, fiber.StatusOK)
}

// GetApplicant handles GET /applicant/:applicant_id
// @Summary Get an applicant
// @Tags Applicant
// @Produce json
// @Param applicant_id path int true "Applicant ID"
// @Success 200 {object} ApplicantResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applicant/{applicant_id} [get]
func (h *ApplicantHandler) GetApplicant(c *fiber.Ctx) error {
	applicantID, err := parseID(c, "applicant_id")
	if err != nil {
		return err
	}
	applicant, err := services.GetApplicant(h.DB, h.Cipher, applicantID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, h.toResponse(*applicant), fiber.StatusOK)
}

// ApplicantImage handles GET /applicant/:applicant_id/image
// @Summary Get an applicant's photo
// @Tags Applicant
// @Produce jpeg
// @Param applicant_id path int true "Applicant ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applicant/{applicant_id}/image [get]
func (h *ApplicantHandler) ApplicantImage(c *fiber.Ctx) error {
	applicantID, err := parseID(c, "applicant_id")
	if err != nil {
		return err
	}
	applicant, err := services.GetApplicant(h.DB, h.Cipher, applicantID)
	if err != nil {
		return err
	}
	return sendImage(c, applicant.Image, "El solicitante no tiene imagen")
}

// DeleteApplicant handles DELETE /applicant/delete/:applicant_id
// @Summary Delete an applicant
// @Tags Applicant
// @Produce json
// @Param applicant_id path int true "Applicant ID"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applicant/delete/{applicant_id} [delete]
func (h *ApplicantHandler) DeleteApplicant(c *fiber.Ctx) error {
	applicantID, err := parseID(c, "applicant_id")
	if err != nil {
		return err
	}
	if err := services.DeleteApplicant(h.DB, applicantID); err != nil {
		return err
	}
	return utils.DeleteResponse(c, "Solicitud eliminada")
}
