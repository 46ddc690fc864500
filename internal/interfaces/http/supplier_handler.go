package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// SupplierHandler maneja /api/suppliers.
type SupplierHandler struct {
	uc     *usecase.SupplierUseCase
	errors *ErrorWriter
}

func NewSupplierHandler(uc *usecase.SupplierUseCase, errs *ErrorWriter) *SupplierHandler {
	return &SupplierHandler{uc: uc, errors: errs}
}

// List godoc
// @Summary      Listar proveedores (paginado)
// @Description  searchField restringe search a name, code, email, phone o companyName.
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Texto libre"
// @Param        searchField  query  string  false  "Columna de búsqueda"
// @Param        status       query  string  false  "active | inactive"
// @Param        page         query  int     false  "Página"
// @Param        limit        query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.SupplierListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), repository.SupplierFilter{
		Search:      c.Query("search"),
		SearchField: c.Query("searchField"),
		Status:      c.Query("status"),
	}, pageFromQuery(c))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"supplier": out})
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"supplier": out})
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"supplier": out})
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Write(c, err)
	}
	return deleted(c, "Supplier")
}
