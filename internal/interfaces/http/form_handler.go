package http

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/application/usecase"
)

//go:embed web/index.html.tmpl
var webFS embed.FS

var indexPage = template.Must(template.ParseFS(webFS, "web/index.html.tmpl"))

// FormHandler página de carga de datos (ventas, estoque, productos).
type FormHandler struct {
	products *usecase.ProductUseCase
	business string
	now      func() time.Time
}

// NewFormHandler construye el handler.
func NewFormHandler(products *usecase.ProductUseCase, business string) *FormHandler {
	return &FormHandler{products: products, business: business, now: time.Now}
}

// Index godoc
// @Summary      Formulario web de registro
// @Tags         web
// @Security     BasicAuth
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *FormHandler) Index(c *fiber.Ctx) error {
	list, err := h.products.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	var sb strings.Builder
	err = indexPage.Execute(&sb, struct {
		Business string
		Username string
		Today    string
		Products []dto.ProductResponse
	}{h.business, GetUsername(c), h.now().Format(dto.DateLayout), list.Items})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(sb.String())
}
