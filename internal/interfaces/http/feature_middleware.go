package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
)

// RequireFeature corta la ruta con 503 cuando la funcionalidad no está configurada
// (p. ej. webhook sin TWILIO_AUTH_TOKEN).
func RequireFeature(feature string, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return respondError(c, fiber.StatusServiceUnavailable, dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "'" + feature + "' no está configurado en este servidor",
			})
		}
		return c.Next()
	}
}
