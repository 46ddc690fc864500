package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
)

// pageFromQuery lee ?page=&limit=. Valores no numéricos cuentan como ausentes y los
// defaults se aplican en el caso de uso.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
}

// decode decodifica y valida el cuerpo JSON de la petición.
func decode(c *fiber.Ctx, dst any) error {
	return dto.DecodeStrict(c.Body(), dst)
}

func deleted(c *fiber.Ctx, what string) error {
	return c.JSON(dto.MessageResponse{Message: what + " deleted successfully"})
}
