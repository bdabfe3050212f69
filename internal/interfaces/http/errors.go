package http

import (
	"errors"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/domain"
)

// errorMapping relaciona errores de dominio con estado HTTP y código.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidArgument, fiber.StatusBadRequest, "INVALID_ARGUMENT"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDivisionUndefined, fiber.StatusUnprocessableEntity, "DIVISION_UNDEFINED"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// statusFor devuelve estado y código para err. Errores desconocidos → 500 INTERNAL.
func statusFor(err error) (int, string) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// writeError responde el fallo como JSON o, si el cliente acepta HTML (formulario), como página.
// Los 500 no exponen el mensaje interno.
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno"
	}
	return respondError(c, status, dto.ErrorResponse{Code: code, Message: msg})
}

func respondError(c *fiber.Ctx, status int, body dto.ErrorResponse) error {
	if wantsHTML(c) {
		var sb strings.Builder
		if err := errorPage.Execute(&sb, struct {
			Status int
			dto.ErrorResponse
		}{status, body}); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(status).SendString(sb.String())
	}
	return c.Status(status).JSON(body)
}

// respondCreated 201 en JSON, o página de confirmación para el formulario.
func respondCreated(c *fiber.Ctx, title string, body any) error {
	if wantsHTML(c) {
		var sb strings.Builder
		if err := successPage.Execute(&sb, title); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusCreated).SendString(sb.String())
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

func wantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Erro {{.Status}}</title></head>
<body>
<h1>Não foi possível registrar</h1>
<p><strong>{{.Code}}</strong>: {{.Message}}</p>
{{range .Details}}<p>{{.Field}}: {{.Message}}</p>
{{end}}<p><a href="/">Voltar</a></p>
</body>
</html>
`))

var successPage = template.Must(template.New("success").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>{{.}}</title></head>
<body>
<h1>{{.}}</h1>
<p><a href="/">Novo registro</a></p>
</body>
</html>
`))
