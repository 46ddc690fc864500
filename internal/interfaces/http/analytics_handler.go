package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/analytics"
)

// AnalyticsHandler estadísticas del dashboard y reporte de cierre diario.
type AnalyticsHandler struct {
	stats   *analytics.StatsUseCase
	closing *analytics.DailyClosingUseCase
	errors  *ErrorWriter
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(stats *analytics.StatsUseCase, closing *analytics.DailyClosingUseCase, errs *ErrorWriter) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats, closing: closing, errors: errs}
}

// GetStats godoc
// @Summary      Conteos actuales, variación a 30 días y sparklines de 14 días
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.stats.GetStats(c.UserContext())
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}

// GetDailyClosing godoc
// @Summary      Cierre diario por cuenta
// @Description  Saldo de apertura, débitos y créditos del día y saldo de cierre de cada cuenta.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.DailyClosingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily-closing [get]
func (h *AnalyticsHandler) GetDailyClosing(c *fiber.Ctx) error {
	out, err := h.closing.GetDailyClosing(c.UserContext(), c.Query("date"))
	if err != nil {
		return h.errors.Write(c, err)
	}
	return c.JSON(out)
}
