package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc     *auth.LoginUseCase
	errors *ErrorWriter
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.LoginUseCase, errs *ErrorWriter) *AuthHandler {
	return &AuthHandler{uc: uc, errors: errs}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := dto.DecodeStrict(c.Body(), &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

// Me devuelve la identidad del token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": GetIdentity(c)})
}
