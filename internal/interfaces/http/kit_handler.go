package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// KitHandler maneja /api/kits.
type KitHandler struct {
	uc     *usecase.KitUseCase
	errors *ErrorWriter
}

func NewKitHandler(uc *usecase.KitUseCase, errs *ErrorWriter) *KitHandler {
	return &KitHandler{uc: uc, errors: errs}
}

func (h *KitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), repository.KitFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}, pageFromQuery(c))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

func (h *KitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"kit": out})
}

// Create godoc
// @Summary      Crear kit con sus ítems
// @Description  Cabecera e ítems se insertan en una sola transacción.
// @Tags         kits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKitRequest  true  "Kit e ítems (partId, quantity)"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/kits [post]
func (h *KitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKitRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"kit": out})
}

func (h *KitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Write(c, err)
	}
	return deleted(c, "Kit")
}
