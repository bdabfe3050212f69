package http

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo según el tag json (o form) en los mensajes.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	_ = v.RegisterValidation("finite", isFinite)
	return v
}

// isFinite rechaza NaN e ±Inf, que el binder de formularios acepta como float.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
	}
	return true
}

// bindAndValidate decodifica JSON o formulario en out y aplica los tags validate.
// Si falla ya escribió la respuesta 400; el handler debe devolver el error recibido.
func bindAndValidate(c *fiber.Ctx, out any) (bool, error) {
	dropEmptyFormValues(c)
	if err := c.BodyParser(out); err != nil {
		return false, respondError(c, fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, respondError(c, fiber.StatusBadRequest, validationResponse(err))
	}
	return true, nil
}

// dropEmptyFormValues quita los inputs vacíos del formulario: un campo vacío es "no informado", no 0.
func dropEmptyFormValues(c *fiber.Ctx) {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationForm) {
		return
	}
	args := c.Request().PostArgs()
	var empty []string
	args.VisitAll(func(key, value []byte) {
		if len(strings.TrimSpace(string(value))) == 0 {
			empty = append(empty, string(key))
		}
	})
	for _, k := range empty {
		args.Del(k)
	}
}

func validationResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			resp.Details = append(resp.Details, dto.ValidationDetail{Field: e.Field(), Message: validationMessage(e)})
		}
	}
	return resp
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obligatorio"
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "gte":
		return "debe ser mayor o igual que " + e.Param()
	case "min":
		return "mínimo " + e.Param()
	case "max":
		return "máximo " + e.Param()
	case "finite":
		return "debe ser un número finito"
	case "datetime":
		return "fecha inválida, formato " + e.Param()
	default:
		return "valor inválido"
	}
}
