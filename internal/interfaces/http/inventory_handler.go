package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
)

// InventoryHandler maneja ajustes de inventario y traslados de stock.
type InventoryHandler struct {
	adjustments *inventory.AdjustmentUseCase
	pdf         *inventory.AdjustmentPDFUseCase
	transfers   *inventory.TransferUseCase
	errors      *ErrorWriter
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	adjustments *inventory.AdjustmentUseCase,
	pdf *inventory.AdjustmentPDFUseCase,
	transfers *inventory.TransferUseCase,
	errs *ErrorWriter,
) *InventoryHandler {
	return &InventoryHandler{adjustments: adjustments, pdf: pdf, transfers: transfers, errors: errs}
}

// CreateAdjustment godoc
// @Summary      Registrar ajuste de inventario
// @Description  Inserta cabecera e ítems y sobrescribe el stock de cada parte en una transacción.
// @Description  newQuantity = previousQuantity + adjustedQuantity.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Cabecera e ítems"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "partId inexistente"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory-adjustments [post]
func (h *InventoryHandler) CreateAdjustment(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.adjustments.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"adjustment": out})
}

// ListAdjustments godoc
// @Summary      Listar ajustes (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"
// @Param        limit  query  int  false  "Tamaño de página"
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/inventory-adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *fiber.Ctx) error {
	out, err := h.adjustments.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) GetAdjustment(c *fiber.Ctx) error {
	out, err := h.adjustments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(fiber.Map{"adjustment": out})
}

// AdjustmentPDF godoc
// @Summary      Comprobante PDF del ajuste
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del ajuste"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory-adjustments/{id}/pdf [get]
func (h *InventoryHandler) AdjustmentPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *InventoryHandler) ListTransfers(c *fiber.Ctx) error {
	out, err := h.transfers.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

// CreateTransfer godoc
// @Summary      Registrar traslado de stock
// @Description  Exige transferNo, transferDate y al menos un ítem. status por defecto: draft.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Traslado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-transfers [post]
func (h *InventoryHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := decode(c, &in); err != nil {
		return h.errors.Write(c, err)
	}
	out, err := h.transfers.Create(c.UserContext(), in)
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transfer": out})
}
