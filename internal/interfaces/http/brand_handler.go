package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// BrandHandler maneja /api/brands.
type BrandHandler struct {
	uc     *usecase.BrandUseCase
	errors *ErrorWriter
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase, errs *ErrorWriter) *BrandHandler {
	return &BrandHandler{uc: uc, errors: errs}
}

// List godoc
// @Summary      Listar marcas
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "active | inactive"
// @Param        search  query  string  false  "Subcadena del nombre"
// @Success      200  {object}  map[string][]dto.BrandResponse
// @Router       /api/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), repository.BrandFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"brands": out})
}

// GetByID godoc
// @Summary      Obtener marca
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  map[string]dto.BrandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"brand": out})
}

// Create godoc
// @Summary      Crear marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  map[string]dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"brand": out})
}

// Update godoc
// @Summary      Actualizar marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a cambiar"
// @Success      200   {object}  map[string]dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"brand": out})
}

// Delete godoc
// @Summary      Eliminar marca
// @Description  Falla con 400 mientras existan partes con esta marca.
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Write(c, err)
	}
	return deleted(c, "Brand")
}
