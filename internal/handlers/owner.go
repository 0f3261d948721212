package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/utils"
	"gorm.io/gorm"
)

// OwnerHandler handles adopter records
type OwnerHandler struct {
	DB     *gorm.DB
	Cipher *crypto.Cipher
}

// ListOwners handles GET /owner/
// @Summary List owners
// @Description Owner contact data is decrypted for the response
// @Tags Owner
// @Produce json
// @Success 200 {array} models.Owner
// @Router /owner/ [get]
func (h *OwnerHandler) ListOwners(c *fiber.Ctx) error {
	owners, err := services.ListOwners(h.DB, h.Cipher)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, owners, fiber.StatusOK)
}

// GetOwner handles GET /owner/:owner_id
// @Summary Get an owner
// @Tags Owner
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Success 200 {object} models.Owner
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /owner/{owner_id} [get]
func (h *OwnerHandler) GetOwner(c *fiber.Ctx) error {
	ownerID, err := parseID(c, "owner_id")
	if err != nil {
		return err
	}
	owner, err := services.GetOwner(h.DB, h.Cipher, ownerID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, owner, fiber.StatusOK)
}

// CreateOwner handles POST /owner/create/
// @Summary Create an owner
// @Tags Owner
// @Accept json
// @Produce json
// @Param owner body services.OwnerInput true "New owner"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /owner/create/ [post]
func (h *OwnerHandler) CreateOwner(c *fiber.Ctx) error {
	var input services.OwnerInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if _, err := services.CreateOwner(h.DB, h.Cipher, input); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Dueño creado")
}

// UpdateOwner handles PUT /owner/update/:owner_id
// @Summary Update an owner
// @Tags Owner
// @Accept json
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Param owner body services.OwnerUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /owner/update/{owner_id} [put]
func (h *OwnerHandler) UpdateOwner(c *fiber.Ctx) error {
	ownerID, err := parseID(c, "owner_id")
	if err != nil {
		return err
	}
	var input services.OwnerUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := services.UpdateOwner(h.DB, h.Cipher, ownerID, input); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Dueño actualizado")
}

// DeleteOwner handles DELETE /owner/delete/:owner_id
// @Summary Delete an owner
// @Description Owners with adopted dogs on record cannot be deleted
// @Tags Owner
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /owner/delete/{owner_id} [delete]
func (h *OwnerHandler) DeleteOwner(c *fiber.Ctx) error {
	ownerID, err := parseID(c, "owner_id")
	if err != nil {
		return err
	}
	if err := services.DeleteOwner(h.DB, ownerID); err != nil {
		return err
	}
	return utils.DeleteResponse(c, "Dueño eliminado")
}
