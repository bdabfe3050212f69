package http

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
)

// LocalUsername clave en c.Locals con el usuario autenticado.
const LocalUsername = "username"

// Authenticator verifica credenciales del formulario y tokens (auth.AuthUseCase).
type Authenticator interface {
	Check(username, password string) bool
	VerifyToken(token string) (string, error)
}

// AuthMiddleware acepta Authorization: Basic (usuario del formulario) o Bearer (JWT).
// Sin credenciales válidas → 401 con WWW-Authenticate para que el navegador pida usuario.
func AuthMiddleware(auth Authenticator, realm string) fiber.Handler {
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`
	unauthorized := func(c *fiber.Ctx, msg string) error {
		c.Set(fiber.HeaderWWWAuthenticate, challenge)
		return respondError(c, fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msg})
	}

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "credenciales requeridas")
		}
		scheme, value, ok := strings.Cut(header, " ")
		if !ok {
			return unauthorized(c, "formato: Basic <credenciales> o Bearer <token>")
		}
		value = strings.TrimSpace(value)

		switch {
		case strings.EqualFold(scheme, "Basic"):
			raw, err := base64.StdEncoding.DecodeString(value)
			if err != nil {
				return unauthorized(c, "credenciales mal codificadas")
			}
			user, pass, ok := strings.Cut(string(raw), ":")
			if !ok || !auth.Check(user, pass) {
				return unauthorized(c, "usuario o contraseña inválidos")
			}
			c.Locals(LocalUsername, user)
		case strings.EqualFold(scheme, "Bearer"):
			user, err := auth.VerifyToken(value)
			if err != nil {
				return unauthorized(c, "token inválido o expirado")
			}
			c.Locals(LocalUsername, user)
		default:
			return unauthorized(c, "esquema de autorización no soportado")
		}
		return c.Next()
	}
}

// GetUsername devuelve el usuario del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
