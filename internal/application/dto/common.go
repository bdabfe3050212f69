package dto

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/domain"
)

// DateLayout formato de fecha de negocio en requests y responses.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail error de validación de un campo.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Decimal convierte un número opcional del formulario a decimal.
// NaN e ±Inf no tienen representación decimal y se tratan como no informados.
func Decimal(v *float64) *decimal.Decimal {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

// ParseDate interpreta una fecha YYYY-MM-DD en UTC. Formato inválido → domain.ErrValidation.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, formato %s", domain.ErrValidation, s, DateLayout)
	}
	return t, nil
}
