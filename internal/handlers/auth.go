package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/config"
	"github.com/huellitas/shelter-backend/internal/email"
	"github.com/huellitas/shelter-backend/internal/middleware"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles authentication and account management routes
type AuthHandler struct {
	DB     *gorm.DB
	Config *config.Config
	Mailer *email.Client
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles POST /auth/token
// @Summary Log in
// @Description Exchange username and password for a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := services.Authenticate(h.DB, username, password)
	if err != nil {
		return err
	}

	ttl := time.Duration(h.Config.TokenTTLMinutes) * time.Minute
	token, _, err := services.IssueAccessToken(h.Config.JWTSecret, user.Username, ttl)
	if err != nil {
		return types.NewInternal(err.Error())
	}

	return utils.SuccessResponse(c, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, fiber.StatusOK)
}

// CreateUser handles POST /auth/
// @Summary Create user
// @Description Create a staff account with an explicit username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body services.UserCreateInput true "New user"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/ [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var input services.UserCreateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := services.CreateUser(h.DB, input); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Usuario creado")
}

// GenerateUser handles POST /auth/generate_user
// @Summary Generate user
// @Description Derive an account from an email and role, then mail the credentials
// @Tags Auth
// @Produce json
// @Param email query string true "Email"
// @Param role query string true "Role (admin or auxiliar)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/generate_user [post]
func (h *AuthHandler) GenerateUser(c *fiber.Ctx) error {
	address := c.Query("email")
	role := models.Role(c.Query("role"))

	user, password, err := services.GenerateUser(h.DB, address, role)
	if err != nil {
		return err
	}

	subject, body := email.CredentialsBody(user.Username, password)
	h.Mailer.SendAsync(user.Email, subject, body)

	return utils.SuccessResponse(c, fiber.Map{
		"detail":   "Usuario creado",
		"username": user.Username,
	}, fiber.StatusOK)
}

// ListUsers handles GET /auth/users/
// @Summary List users
// @Tags Auth
// @Produce json
// @Success 200 {array} models.User
// @Router /auth/users/ [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// UpdateUser handles PUT /auth/update
// @Summary Update own profile
// @Description Update username and/or email of the authenticated user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body services.UserUpdateInput true "Fields to change"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/update [put]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	current := middleware.UserFromContext(c)
	var input services.UserUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := services.UpdateUserInfo(h.DB, current.Username, input); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Usuario actualizado")
}

type updatePasswordInput struct {
	ActualPassword string `json:"actual_password"`
	NewPassword    string `json:"new_password"`
}

// UpdatePassword handles PUT /auth/update_password
// @Summary Change own password
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/update_password [put]
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	current := middleware.UserFromContext(c)
	var input updatePasswordInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := services.UpdateUserPassword(h.DB, current.Username, input.ActualPassword, input.NewPassword); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Contraseña actualizada")
}

// DeleteUser handles DELETE /auth/delete/:user_id
// @Summary Delete user
// @Tags Auth
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /auth/delete/{user_id} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	current := middleware.UserFromContext(c)
	userID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	if err := services.DeleteUser(h.DB, userID, current.Username); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Usuario eliminado")
}

type resetSendInput struct {
	Email string `json:"email"`
}

// SendResetCode handles POST /auth/reset_password/send
// @Summary Request a password reset code
// @Description Generate a one-time code and mail it to the account's address
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /auth/reset_password/send [post]
func (h *AuthHandler) SendResetCode(c *fiber.Ctx) error {
	var input resetSendInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	ttl := time.Duration(h.Config.ResetTokenTTLMinutes) * time.Minute
	token, err := services.GenerateResetCode(h.DB, input.Email, ttl)
	if err != nil {
		return err
	}

	subject, body := email.ResetCodeBody(token.Value, h.Config.ResetTokenTTLMinutes)
	h.Mailer.SendAsync(input.Email, subject, body)

	return utils.DetailResponse(c, "Código enviado al correo")
}

type resetVerifyInput struct {
	Token int `json:"token"`
}

// VerifyResetCode handles POST /auth/reset_password/verify
// @Summary Check a password reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 410 {object} utils.ErrorResponseStruct
// @Router /auth/reset_password/verify [post]
func (h *AuthHandler) VerifyResetCode(c *fiber.Ctx) error {
	var input resetVerifyInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if _, err := services.VerifyResetCode(h.DB, input.Token); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Token válido")
}

type resetPasswordInput struct {
	Token       int    `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword handles POST /auth/reset_password/reset
// @Summary Reset a forgotten password
// @Description Consume a valid reset code and set the new password
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.DetailResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 410 {object} utils.ErrorResponseStruct
// @Router /auth/reset_password/reset [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := services.ResetPassword(h.DB, input.Token, input.NewPassword); err != nil {
		return err
	}
	return utils.DetailResponse(c, "Contraseña actualizada")
}
