package twilio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config credenciales de la cuenta y remitente.
type Config struct {
	BaseURL    string // https://api.twilio.com
	AccountSID string
	AuthToken  string
	From       string // whatsapp:+55...
}

// ErrNotConfigured cuenta o remitente ausentes.
var ErrNotConfigured = errors.New("twilio: cliente sin configurar")

// Client envía mensajes por la API REST de Twilio (Messages.json).
type Client struct {
	http *resty.Client
	sid  string
	from string
}

// NewClient construye el cliente sobre resty con basic auth (SID, token).
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.twilio.com"
	}
	rc := resty.New().
		SetBaseURL(base).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
		SetTimeout(15 * time.Second)
	return &Client{http: rc, sid: cfg.AccountSID, from: cfg.From}
}

// MessageResult campos útiles de la respuesta de Twilio.
type MessageResult struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// SendMessage envía body al destinatario to (whatsapp:+55...).
func (c *Client) SendMessage(ctx context.Context, to, body string) (*MessageResult, error) {
	if c.sid == "" || c.from == "" {
		return nil, ErrNotConfigured
	}
	result := new(MessageResult)
	apiErr := new(apiError)

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"From": c.from,
			"To":   to,
			"Body": body,
		}).
		SetResult(result).
		SetError(apiErr).
		Post(fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", c.sid))
	if err != nil {
		return nil, fmt.Errorf("twilio: enviar mensaje: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("twilio: api error: status=%d code=%d message=%s", resp.StatusCode(), apiErr.Code, apiErr.Message)
	}
	return result, nil
}

// Send envía el mensaje descartando el resultado (scheduler.Sender).
func (c *Client) Send(ctx context.Context, to, body string) error {
	_, err := c.SendMessage(ctx, to, body)
	return err
}
