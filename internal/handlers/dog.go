package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/utils"
	"gorm.io/gorm"
)

// DogHandler handles the three dog collections and the adoption workflow
type DogHandler struct {
	DB            *gorm.DB
	Cipher        *crypto.Cipher
	MaxImageBytes int
}

// decodeDogImage decodes the optional base64 image of a create payload.
func (h *DogHandler) decodeDogImage(encoded string) ([]byte, error) {
	return services.DecodeImage(encoded, h.MaxImageBytes)
}

// decodeDogUpdateImage decodes the optional image of an update payload.
// A nil pointer means "keep the stored image".
func (h *DogHandler) decodeDogUpdateImage(encoded *string) ([]byte, error) {
	if encoded == nil {
		return nil, nil
	}
	return services.DecodeImage(*encoded, h.MaxImageBytes)
}

func parseAdoptionDate(c *fiber.Ctx) (models.Date, error) {
	date, err := models.ParseDate(c.Params("adoption_date"))
	if err != nil {
		return models.Date{}, types.NewValidation("Invalid adoption_date, expected YYYY-MM-DD")
	}
	return date, nil
}

// ListStaticDogs handles GET /dog/static_dog/
// @Summary List permanent dogs
// @Tags StaticDog
// @Produce json
// @Success 200 {array} models.StaticDog
// @Router /dog/static_dog/ [get]
func (h *DogHandler) ListStaticDogs(c *fiber.Ctx) error {
	dogs, err := services.ListStaticDogs(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dogs, fiber.StatusOK)
}

// GetStaticDog handles GET /dog/static_dog/:dog_id
// @Summary Get a permanent dog
// @Tags StaticDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Success 200 {object} models.StaticDog
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/static_dog/{dog_id} [get]
func (h *DogHandler) GetStaticDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	dog, err := services.GetStaticDog(h.DB, dogID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dog, fiber.StatusOK)
}

// StaticDogImage handles GET /dog/static_dog/:dog_id/image
// @Summary Get a permanent dog's photo
// @Tags StaticDog
// @Produce jpeg
// @Param dog_id path int true "Dog ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/static_dog/{dog_id}/image [get]
func (h *DogHandler) StaticDogImage(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	dog, err := services.GetStaticDog(h.DB, dogID)
	if err != nil {
		return err
	}
	return sendImage(c, dog.Image, "El perro no tiene imagen")
}

// CreateStaticDog handles POST /dog/static_dog/create/
// @Summary Create a permanent dog
// @Tags StaticDog
// @Accept json
// @Produce json
// @Param dog body services.DogInput true "New dog"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /dog/static_dog/create/ [post]
func (h *DogHandler) CreateStaticDog(c *fiber.Ctx) error {
	var input services.DogInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	image, err := h.decodeDogImage(input.Image)
	if err != nil {
		return err
	}
	if err := services.CreateStaticDog(h.DB, input, image); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro Permanente creado")
}

// UpdateStaticDog handles PUT /dog/static_dog/update/:dog_id
// @Summary Update a permanent dog
// @Tags StaticDog
// @Accept json
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Param dog body services.DogUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/static_dog/update/{dog_id} [put]
func (h *DogHandler) UpdateStaticDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	var input services.DogUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	image, err := h.decodeDogUpdateImage(input.Image)
	if err != nil {
		return err
	}
	if err := services.UpdateStaticDog(h.DB, dogID, input, image); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro Permanente actualizado")
}

// DeleteStaticDog handles DELETE /dog/static_dog/delete/:dog_id
// @Summary Delete a permanent dog
// @Tags StaticDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/static_dog/delete/{dog_id} [delete]
func (h *DogHandler) DeleteStaticDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	if err := services.DeleteStaticDog(h.DB, dogID); err != nil {
		return err
	}
	return utils.DeleteResponse(c, "Perro Permanente eliminado")
}

// ListAdoptionDogs handles GET /dog/adoption_dog/
// @Summary List dogs available for adoption
// @Tags AdoptionDog
// @Produce json
// @Success 200 {array} models.AdoptionDog
// @Router /dog/adoption_dog/ [get]
func (h *DogHandler) ListAdoptionDogs(c *fiber.Ctx) error {
	dogs, err := services.ListAdoptionDogs(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dogs, fiber.StatusOK)
}

// GetAdoptionDog handles GET /dog/adoption_dog/:dog_id
// @Summary Get an adoptable dog
// @Tags AdoptionDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Success 200 {object} models.AdoptionDog
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/{dog_id} [get]
func (h *DogHandler) GetAdoptionDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	dog, err := services.GetAdoptionDog(h.DB, dogID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dog, fiber.StatusOK)
}

// AdoptionDogImage handles GET /dog/adoption_dog/:dog_id/image
// @Summary Get an adoptable dog's photo
// @Tags AdoptionDog
// @Produce jpeg
// @Param dog_id path int true "Dog ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/{dog_id}/image [get]
func (h *DogHandler) AdoptionDogImage(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	dog, err := services.GetAdoptionDog(h.DB, dogID)
	if err != nil {
		return err
	}
	return sendImage(c, dog.Image, "El perro no tiene imagen")
}

// CreateAdoptionDog handles POST /dog/adoption_dog/create/
// @Summary Create an adoptable dog
// @Tags AdoptionDog
// @Accept json
// @Produce json
// @Param dog body services.DogInput true "New dog"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/create/ [post]
func (h *DogHandler) CreateAdoptionDog(c *fiber.Ctx) error {
	var input services.DogInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	image, err := h.decodeDogImage(input.Image)
	if err != nil {
		return err
	}
	if err := services.CreateAdoptionDog(h.DB, input, image); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro de adopcion creado")
}

// UpdateAdoptionDog handles PUT /dog/adoption_dog/update/:dog_id
// @Summary Update an adoptable dog
// @Tags AdoptionDog
// @Accept json
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Param dog body services.DogUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/update/{dog_id} [put]
func (h *DogHandler) UpdateAdoptionDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	var input services.DogUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	image, err := h.decodeDogUpdateImage(input.Image)
	if err != nil {
		return err
	}
	if err := services.UpdateAdoptionDog(h.DB, dogID, input, image); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro de adopcion actualizado")
}

// DeleteAdoptionDog handles DELETE /dog/adoption_dog/delete/:dog_id
// @Summary Delete an adoptable dog
// @Tags AdoptionDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/delete/{dog_id} [delete]
func (h *DogHandler) DeleteAdoptionDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	if err := services.DeleteAdoptionDog(h.DB, dogID); err != nil {
		return err
	}
	return utils.DeleteResponse(c, "Perro de adopcion eliminado")
}

// AdoptDog handles POST /dog/adoption_dog/adopt/:dog_id/:adoption_date
// @Summary Adopt a dog with a new owner
// @Description Move the dog from the adoption pool to the adopted set, creating its owner
// @Tags AdoptionDog
// @Accept json
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Param adoption_date path string true "Adoption date (YYYY-MM-DD)"
// @Param owner body services.OwnerInput true "New owner"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/adopt/{dog_id}/{adoption_date} [post]
func (h *DogHandler) AdoptDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	date, err := parseAdoptionDate(c)
	if err != nil {
		return err
	}
	var owner services.OwnerInput
	if err := parseBody(c, &owner); err != nil {
		return err
	}
	if err := services.AdoptDog(h.DB, h.Cipher, dogID, date, owner); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro Adoptado.")
}

// AdoptDogExistingOwner handles POST /dog/adoption_dog/adopt_existing/:dog_id/:adoption_date/:owner_id
// @Summary Adopt a dog with an existing owner
// @Tags AdoptionDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Param adoption_date path string true "Adoption date (YYYY-MM-DD)"
// @Param owner_id path int true "Owner ID"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /dog/adoption_dog/adopt_existing/{dog_id}/{adoption_date}/{owner_id} [post]
func (h *DogHandler) AdoptDogExistingOwner(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	date, err := parseAdoptionDate(c)
	if err != nil {
		return err
	}
	ownerID, err := parseID(c, "owner_id")
	if err != nil {
		return err
	}
	if err := services.AdoptDogExistingOwner(h.DB, h.Cipher, dogID, date, ownerID); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro Adoptado.")
}

// ListAdoptedDogs handles GET /dog/adopted_dog/
// @Summary List adopted dogs
// @Tags AdoptedDog
// @Produce json
// @Success 200 {array} models.AdoptedDog
// @Router /dog/adopted_dog/ [get]
func (h *DogHandler) ListAdoptedDogs(c *fiber.Ctx) error {
	dogs, err := services.ListAdoptedDogs(h.DB, h.Cipher)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dogs, fiber.StatusOK)
}

// GetAdoptedDog handles GET /dog/adopted_dog/:dog_id
// @Summary Get an adopted dog
// @Description Returns the dog with its owner (PII decrypted) and visit history
// @Tags AdoptedDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Success 200 {object} models.AdoptedDog
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adopted_dog/{dog_id} [get]
func (h *DogHandler) GetAdoptedDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	dog, err := services.GetAdoptedDog(h.DB, h.Cipher, dogID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, dog, fiber.StatusOK)
}

// AdoptedDogImage handles GET /dog/adopted_dog/:dog_id/image
// @Summary Get an adopted dog's photo
// @Tags AdoptedDog
// @Produce jpeg
// @Param dog_id path int true "Dog ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adopted_dog/{dog_id}/image [get]
func (h *DogHandler) AdoptedDogImage(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	dog, err := services.GetAdoptedDog(h.DB, h.Cipher, dogID)
	if err != nil {
		return err
	}
	return sendImage(c, dog.Image, "El perro no tiene imagen")
}

// UpdateAdoptedDog handles PUT /dog/adopted_dog/update/:dog_id
// @Summary Update an adopted dog
// @Tags AdoptedDog
// @Accept json
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Param dog body services.DogUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adopted_dog/update/{dog_id} [put]
func (h *DogHandler) UpdateAdoptedDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	var input services.DogUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	image, err := h.decodeDogUpdateImage(input.Image)
	if err != nil {
		return err
	}
	if err := services.UpdateAdoptedDog(h.DB, dogID, input, image); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro Adoptado actualizado")
}

// UnadoptDog handles POST /dog/adopted_dog/unadopt/:dog_id/
// @Summary Return an adopted dog to the adoption pool
// @Description Reverse the adoption; the owner is removed when this was its only dog
// @Tags AdoptedDog
// @Produce json
// @Param dog_id path int true "Dog ID"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /dog/adopted_dog/unadopt/{dog_id}/ [post]
func (h *DogHandler) UnadoptDog(c *fiber.Ctx) error {
	dogID, err := parseID(c, "dog_id")
	if err != nil {
		return err
	}
	if err := services.UnadoptDog(h.DB, dogID); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Perro des adoptado.")
}
