package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/logger"
)

const msgInternal = "Internal server error"

// ErrorWriter traduce errores de dominio al sobre {error, message?}.
// Los 5xx se registran pasando por un Throttle para no inundar el log cuando
// la base o el upstream caen.
type ErrorWriter struct {
	log        *logger.Logger
	throttle   *logger.Throttle
	production bool
}

// NewErrorWriter construye el writer. window es la ventana de supresión de logs 5xx.
func NewErrorWriter(log *logger.Logger, production bool, window time.Duration) *ErrorWriter {
	if log == nil {
		log = logger.Nop()
	}
	return &ErrorWriter{log: log, throttle: logger.NewThrottle(window), production: production}
}

// Write responde con el status correspondiente al error.
func (w *ErrorWriter) Write(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrDependency):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: clientMessage(err)})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: clientMessage(err)})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, auth.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, domain.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: "Too many requests"})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
	}

	w.logServerError(c, err)
	body := dto.ErrorResponse{Error: msgInternal}
	if errors.Is(err, domain.ErrUpstream) {
		body.Error = "Upstream request failed"
	}
	if !w.production {
		body.Message = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// Handler adapta Write a fiber.Config.ErrorHandler: cubre errores no mapeados
// devueltos por handlers y los pánicos recuperados por el middleware recover.
func (w *ErrorWriter) Handler(c *fiber.Ctx, err error) error {
	return w.Write(c, err)
}

func (w *ErrorWriter) logServerError(c *fiber.Ctx, err error) {
	ok, suppressed := w.throttle.Allow()
	if !ok {
		return
	}
	ev := w.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path())
	if suppressed > 0 {
		ev = ev.Int("suppressed", suppressed)
	}
	ev.Msg("error atendiendo la petición")
}

// clientMessage devuelve solo el mensaje legible del error de dominio, esté donde esté en la cadena.
func clientMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Msg
	}
	var dep *domain.DependencyError
	if errors.As(err, &dep) {
		return dep.Error()
	}
	return err.Error()
}
