package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
)

// LocalIdentity clave de c.Locals donde queda la identidad verificada.
const LocalIdentity = "identity"

// AuthMiddleware exige "Authorization: Bearer <token>" válido. Cualquier fallo responde
// 401 {error:"Unauthorized"} sin llegar al handler ni a la capa de datos.
func AuthMiddleware(verifier *auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := verifier.Verify(c.Get(fiber.HeaderAuthorization))
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad cargada por AuthMiddleware, o nil.
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	id, _ := c.Locals(LocalIdentity).(*auth.Identity)
	return id
}

// GetUserID atajo para el id del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	if id := GetIdentity(c); id != nil {
		return id.UserID
	}
	return ""
}
