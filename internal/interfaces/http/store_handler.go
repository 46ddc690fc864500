package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// StoreHandler maneja /api/stores y /api/racks.
type StoreHandler struct {
	uc     *usecase.StoreUseCase
	errors *ErrorWriter
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, errs *ErrorWriter) *StoreHandler {
	return &StoreHandler{uc: uc, errors: errs}
}

func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	out, err := h.uc.ListStores(c.UserContext())
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"stores": out})
}

func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.CreateStore(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"store": out})
}

// ListRacks godoc
// @Summary      Listar racks (paginado, con su tienda)
// @Tags         racks
// @Security     Bearer
// @Produce      json
// @Param        search   query  string  false  "Número de rack"
// @Param        status   query  string  false  "active | inactive"
// @Param        storeId  query  string  false  "Tienda"
// @Param        page     query  int     false  "Página"
// @Param        limit    query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.RackListResponse
// @Router       /api/racks [get]
func (h *StoreHandler) ListRacks(c *fiber.Ctx) error {
	out, err := h.uc.ListRacks(c.UserContext(), repository.RackFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		StoreID: c.Query("storeId"),
	}, pageFromQuery(c))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

func (h *StoreHandler) GetRack(c *fiber.Ctx) error {
	out, err := h.uc.GetRack(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"rack": out})
}

// CreateRack godoc
// @Summary      Crear rack
// @Description  404 si la tienda no existe; 400 si el número ya existe en la tienda.
// @Tags         racks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRackRequest  true  "rackNumber y storeId"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/racks [post]
func (h *StoreHandler) CreateRack(c *fiber.Ctx) error {
	var in dto.CreateRackRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.CreateRack(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rack": out})
}

func (h *StoreHandler) UpdateRack(c *fiber.Ctx) error {
	var in dto.UpdateRackRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.uc.UpdateRack(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"rack": out})
}

func (h *StoreHandler) DeleteRack(c *fiber.Ctx) error {
	if err := h.uc.DeleteRack(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Write(c, err)
	}
	return deleted(c, "Rack")
}
