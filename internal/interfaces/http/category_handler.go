package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// CategoryHandler maneja /api/categories.
type CategoryHandler struct {
	uc     *usecase.CategoryUseCase
	errors *ErrorWriter
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, errs *ErrorWriter) *CategoryHandler {
	return &CategoryHandler{uc: uc, errors: errs}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "active | inactive"
// @Param        type    query  string  false  "main | sub"
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), repository.CategoryFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"categories": out})
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"category": out})
}

// Create godoc
// @Summary      Crear categoría
// @Description  type=sub exige parentId de una categoría main existente.
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": out})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"category": out})
}

// Delete bloqueado mientras partes o subcategorías la referencien.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Write(c, err)
	}
	return deleted(c, "Category")
}
