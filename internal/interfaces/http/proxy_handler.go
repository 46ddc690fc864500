package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/upstream"
)

// ProxyHandler reenvía la petición al backend bajo suffix ("/customers", "/vouchers", ...)
// y devuelve su estado y cuerpo sin tocarlos. Se monta detrás de AuthMiddleware, así que
// una petición sin token válido nunca llega al backend.
func ProxyHandler(gw upstream.Gateway, suffix string, errs *ErrorWriter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := suffix
		if rest := c.Params("*"); rest != "" {
			path += "/" + rest
		}
		resp, err := gw.Forward(c.UserContext(), upstream.ForwardRequest{
			Method:        c.Method(),
			Path:          path,
			RawQuery:      string(c.Request().URI().QueryString()),
			Authorization: c.Get(fiber.HeaderAuthorization),
			ContentType:   c.Get(fiber.HeaderContentType),
			Body:          c.Body(),
		})
		if err != nil {
			// el detalle del transporte solo sale fuera de producción (ErrorWriter)
			if !errors.Is(err, domain.ErrUpstream) {
				err = fmt.Errorf("%w: %w", domain.ErrUpstream, err)
			}
			return errs.Write(c, err)
		}
		c.Set(fiber.HeaderContentType, resp.ContentType)
		return c.Status(resp.Status).Send(resp.Body)
	}
}
