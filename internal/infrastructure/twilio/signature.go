// Package twilio integra el canal WhatsApp de Twilio: validación de la firma
// de los webhooks, respuesta TwiML y envío de mensajes por la API REST.
package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"sort"
	"strings"
)

// SignatureHeader cabecera con la firma de Twilio.
const SignatureHeader = "X-Twilio-Signature"

// SignatureValidator valida X-Twilio-Signature con el auth token de la cuenta.
// Sin token configurado rechaza toda petición.
type SignatureValidator struct {
	authToken []byte
}

// NewSignatureValidator construye el validador.
func NewSignatureValidator(authToken string) *SignatureValidator {
	return &SignatureValidator{authToken: []byte(authToken)}
}

// Sign calcula base64(HMAC-SHA1(token, url + clave1 + valor1 + ...)) con las claves ordenadas.
// Claves repetidas aportan todos sus valores, también ordenados.
func (v *SignatureValidator) Sign(url string, params map[string][]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(url)
	for _, k := range keys {
		values := append([]string(nil), params[k]...)
		sort.Strings(values)
		for _, val := range values {
			b.WriteString(k)
			b.WriteString(val)
		}
	}

	mac := hmac.New(sha1.New, v.authToken)
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Validate compara la firma recibida en tiempo constante.
func (v *SignatureValidator) Validate(url string, params map[string][]string, signature string) bool {
	if len(v.authToken) == 0 || signature == "" {
		return false
	}
	expected := v.Sign(url, params)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
