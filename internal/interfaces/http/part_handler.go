package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// PartHandler maneja /api/parts.
type PartHandler struct {
	uc     *usecase.PartUseCase
	errors *ErrorWriter
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *usecase.PartUseCase, errs *ErrorWriter) *PartHandler {
	return &PartHandler{uc: uc, errors: errs}
}

// List godoc
// @Summary      Listar partes (paginado)
// @Description  search busca en partNo, masterPartNo y descripción. Cada parte incluye su stock.
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        page          query  int     false  "Página (default 1)"
// @Param        limit         query  int     false  "Tamaño de página (default 10, max 100)"
// @Param        status        query  string  false  "active | inactive"
// @Param        search        query  string  false  "Texto libre"
// @Param        brand         query  string  false  "Marca"
// @Param        mainCategory  query  string  false  "Categoría principal"
// @Param        origin        query  string  false  "Origen"
// @Param        grade         query  string  false  "Grado"
// @Success      200  {object}  dto.PartListResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), repository.PartFilter{
		Status:       c.Query("status"),
		Search:       c.Query("search"),
		Brand:        c.Query("brand"),
		MainCategory: c.Query("mainCategory"),
		Origin:       c.Query("origin"),
		Grade:        c.Query("grade"),
	}, pageFromQuery(c))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener parte
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la parte"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"part": out})
}

// Create godoc
// @Summary      Crear parte
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "partNo es obligatorio y único"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"part": out})
}

func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"part": out})
}

func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Write(c, err)
	}
	return deleted(c, "Part")
}
