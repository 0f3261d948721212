package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/utils"
	"gorm.io/gorm"
)

// VisitHandler handles post-adoption follow-up visits
type VisitHandler struct {
	DB            *gorm.DB
	Cipher        *crypto.Cipher
	MaxImageBytes int
}

// CreateVisit handles POST /visits/create/
// @Summary Record a follow-up visit
// @Description Evidence arrives base64-encoded and is stored encrypted
// @Tags Visit
// @Accept json
// @Produce json
// @Param visit body services.VisitInput true "New visit"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visits/create/ [post]
func (h *VisitHandler) CreateVisit(c *fiber.Ctx) error {
	var input services.VisitInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	evidence, err := services.DecodeImage(input.Evidence, h.MaxImageBytes)
	if err != nil {
		return err
	}
	if _, err := services.CreateVisit(h.DB, h.Cipher, input, evidence); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Visita creada")
}

// ListVisits handles GET /visits/
// @Summary List visits
// @Tags Visit
// @Produce json
// @Success 200 {array} models.Visit
// @Router /visits/ [get]
func (h *VisitHandler) ListVisits(c *fiber.Ctx) error {
	visits, err := services.ListVisits(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, visits, fiber.StatusOK)
}

// ListVisitsByDog handles GET /visits/dog/:dog_id/all/
// @Summary List visits for one adopted dog
// @Tags Visit
// @Produce json
// @Param dog_id path int true "Adopted dog ID"
// @Success 200 {array} models.Visit
// @Router /visits/dog/{dog_id}/all/ [get]
func (h *VisitHandler) ListVisitsByDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	visits, err := services.ListVisitsByDog(h.DB, dogID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, visits, fiber.StatusOK)
}

// GetVisit handles GET /visits/:visit_id
// @Summary Get a visit
// @Tags Visit
// @Produce json
// @Param visit_id path int true "Visit ID"
// @Success 200 {object} models.Visit
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visits/{visit_id} [get]
func (h *VisitHandler) GetVisit(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visit_id")
	if err != nil {
		return err
	}
	visit, err := services.GetVisit(h.DB, visitID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, visit, fiber.StatusOK)
}

// VisitEvidence handles GET /visits/:visit_id/evidence
// @Summary Get a visit's photo evidence
// @Tags Visit
// @Produce jpeg
// @Param visit_id path int true "Visit ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visits/{visit_id}/evidence [get]
func (h *VisitHandler) VisitEvidence(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visit_id")
	if err != nil {
		return err
	}
	evidence, err := services.VisitEvidence(h.DB, h.Cipher, visitID)
	if err != nil {
		return err
	}
	return sendImage(c, evidence, "La visita no tiene evidencia")
}

// UpdateVisit handles PUT /visits/update/:visit_id
// @Summary Update a visit
// @Tags Visit
// @Accept json
// @Produce json
// @Param visit_id path int true "Visit ID"
// @Param visit body services.VisitUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visits/update/{visit_id} [put]
func (h *VisitHandler) UpdateVisit(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visit_id")
	if err != nil {
		return err
	}
	var input services.VisitUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	var evidence []byte
	if input.Evidence != nil {
		if evidence, err = services.DecodeImage(*input.Evidence, h.MaxImageBytes); err != nil {
			return err
		}
	}
	if err := services.UpdateVisit(h.DB, h.Cipher, visitID, input, evidence); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Visita actualizada")
}

// DeleteVisit handles DELETE /visits/delete/:visit_id
// @Summary Delete a visit
// @Tags Visit
// @Produce json
// @Param visit_id path int true "Visit ID"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visits/delete/{visit_id} [delete]
func (h *VisitHandler) DeleteVisit(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visit_id")
	if err != nil {
		return err
	}
	if err := services.DeleteVisit(h.DB, visitID); err != nil {
		return err
	}
	return utils.DeleteResponse(c, "Visita eliminada")
}
