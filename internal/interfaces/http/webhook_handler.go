package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/infrastructure/twilio"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// SignatureValidator aprueba o rechaza el webhook (twilio.SignatureValidator).
type SignatureValidator interface {
	Validate(url string, params map[string][]string, signature string) bool
}

// ChatInterpreter responde comandos de texto (chatbot.Interpreter).
type ChatInterpreter interface {
	Interpret(ctx context.Context, raw string) string
}

// WebhookHandler recibe mensajes de WhatsApp vía Twilio.
type WebhookHandler struct {
	validator   SignatureValidator
	interpreter ChatInterpreter
	log         *logger.Logger
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(validator SignatureValidator, interpreter ChatInterpreter, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{validator: validator, interpreter: interpreter, log: log.Component("webhook")}
}

// Receive godoc
// @Summary      Webhook de WhatsApp (Twilio)
// @Description  Valida X-Twilio-Signature y responde TwiML con el resultado del comando.
// @Tags         whatsapp
// @Accept       x-www-form-urlencoded
// @Produce      xml
// @Param        Body  formData  string  true  "Texto del mensaje"
// @Success      200
// @Failure      403
// @Router       /whatsapp/webhook [post]
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	params := map[string][]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		params[k] = append(params[k], string(value))
	})

	url := publicURL(c)
	if !h.validator.Validate(url, params, c.Get(twilio.SignatureHeader)) {
		h.log.Warn().Str("url", url).Str("ip", c.IP()).Msg("firma de webhook rechazada")
		return c.Status(fiber.StatusForbidden).SendString("forbidden")
	}

	reply := h.interpreter.Interpret(c.UserContext(), c.FormValue("Body"))
	out, err := twilio.MessageResponse(reply)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(out)
}

// publicURL reconstruye la URL que firmó Twilio; detrás de un proxy usa X-Forwarded-Proto/Host.
func publicURL(c *fiber.Ctx) string {
	scheme := c.Protocol()
	if p := c.Get(fiber.HeaderXForwardedProto); p != "" {
		scheme = strings.TrimSpace(strings.Split(p, ",")[0])
	}
	host := string(c.Request().Host())
	if h := c.Get(fiber.HeaderXForwardedHost); h != "" {
		host = strings.TrimSpace(strings.Split(h, ",")[0])
	}
	return scheme + "://" + host + c.OriginalURL()
}
