// Package sales contiene las reglas puras de venta: validación del payload por
// modalidad, cálculo de ingreso, lucro y consumo de barriles.
package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// Field nombre de un campo numérico del payload de venta.
type Field string

const (
	FieldTotal       Field = "total"
	FieldKegsSold    Field = "kegs_sold"
	FieldStaffCost   Field = "staff_cost"
	FieldCupsCost    Field = "cups_cost"
	FieldInvoiceCost Field = "invoice_cost"
	FieldCard        Field = "card"
	FieldCash        Field = "cash"
	FieldPix         Field = "pix"
)

// FieldPolicy regla de un campo opcional.
// RequiredFor vacío significa opcional en todas las modalidades.
type FieldPolicy struct {
	RequiredFor entity.SaleType
	ZeroInSums  bool
}

// fieldOrder fija el orden de validación para que el primer error sea determinista.
var fieldOrder = []Field{
	FieldTotal, FieldKegsSold,
	FieldStaffCost, FieldCupsCost, FieldInvoiceCost,
	FieldCard, FieldCash, FieldPix,
}

// FieldPolicies tabla única de obligatoriedad y tratamiento en sumas.
var FieldPolicies = map[Field]FieldPolicy{
	FieldTotal:       {RequiredFor: entity.SaleTypeLoose},
	FieldKegsSold:    {RequiredFor: entity.SaleTypeKegBulk},
	FieldStaffCost:   {ZeroInSums: true},
	FieldCupsCost:    {ZeroInSums: true},
	FieldInvoiceCost: {ZeroInSums: true},
	FieldCard:        {},
	FieldCash:        {},
	FieldPix:         {},
}

// Payload datos variables de una venta. nil = campo no informado.
type Payload struct {
	Total       *decimal.Decimal
	KegsSold    *decimal.Decimal
	StaffCost   *decimal.Decimal
	CupsCost    *decimal.Decimal
	InvoiceCost *decimal.Decimal
	Card        *decimal.Decimal
	Cash        *decimal.Decimal
	Pix         *decimal.Decimal
	Notes       string
}

// Get devuelve el valor crudo del campo.
func (p Payload) Get(f Field) *decimal.Decimal {
	switch f {
	case FieldTotal:
		return p.Total
	case FieldKegsSold:
		return p.KegsSold
	case FieldStaffCost:
		return p.StaffCost
	case FieldCupsCost:
		return p.CupsCost
	case FieldInvoiceCost:
		return p.InvoiceCost
	case FieldCard:
		return p.Card
	case FieldCash:
		return p.Cash
	case FieldPix:
		return p.Pix
	}
	return nil
}

// Amount valor del campo para sumas: ausente cuenta como 0 si la política lo permite.
func (p Payload) Amount(f Field) decimal.Decimal {
	if v := p.Get(f); v != nil {
		return *v
	}
	return decimal.Zero
}

// OperatingCosts suma de los gastos operativos (funcionarios, vasos, boleto).
func (p Payload) OperatingCosts() decimal.Decimal {
	sum := decimal.Zero
	for _, f := range fieldOrder {
		if FieldPolicies[f].ZeroInSums {
			sum = sum.Add(p.Amount(f))
		}
	}
	return sum
}

// Validate aplica la tabla de políticas: campos obligatorios de la modalidad y montos no negativos.
func Validate(t entity.SaleType, p Payload) error {
	for _, f := range fieldOrder {
		v := p.Get(f)
		if v == nil {
			if FieldPolicies[f].RequiredFor == t {
				return fmt.Errorf("%w: %s es obligatorio para ventas %s", domain.ErrValidation, f, t)
			}
			continue
		}
		if v.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrValidation, f)
		}
	}
	return nil
}

// ParseSaleType acepta los nombres canónicos y los alias del formulario web.
func ParseSaleType(raw string) (entity.SaleType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(entity.SaleTypeLoose), "feira":
		return entity.SaleTypeLoose, nil
	case string(entity.SaleTypeKegBulk), "barril_festas":
		return entity.SaleTypeKegBulk, nil
	}
	return "", fmt.Errorf("%w: tipo de venta %q", domain.ErrInvalidArgument, raw)
}

// WeekdayName nombre (en inglés) del día de la semana de la fecha.
func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

// Outcome resultado del cálculo de una venta, listo para persistir.
type Outcome struct {
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	Liters       decimal.Decimal
	KegsDepleted decimal.Decimal
	MovementKind entity.MovementKind
	UnitCost     *decimal.Decimal // costo promedio informativo (solo keg-bulk)
	LiterPriceAt *decimal.Decimal // snapshot del precio por litro (solo loose)
}

// ComputeLoose venta a granel: ingreso = total; litros = total / precio_litro;
// barriles = litros / volumen del barril; lucro = total − gastos operativos.
func ComputeLoose(product *entity.Product, p Payload) (Outcome, error) {
	if p.Total == nil {
		return Outcome{}, fmt.Errorf("%w: %s es obligatorio para ventas %s", domain.ErrValidation, FieldTotal, entity.SaleTypeLoose)
	}
	if product.LiterPrice == nil || product.LiterPrice.IsZero() {
		return Outcome{}, fmt.Errorf("%w: producto %s", domain.ErrDivisionUndefined, product.Name)
	}
	if product.KegVolumeLiters.IsZero() {
		return Outcome{}, fmt.Errorf("%w: volumen de barril cero en %s", domain.ErrDivisionUndefined, product.Name)
	}
	revenue := *p.Total
	liters := revenue.Div(*product.LiterPrice)
	kegs := liters.Div(product.KegVolumeLiters)
	price := *product.LiterPrice
	return Outcome{
		Revenue:      revenue,
		Profit:       revenue.Sub(p.OperatingCosts()),
		Liters:       liters,
		KegsDepleted: kegs,
		MovementKind: entity.MovementSaleLoose,
		LiterPriceAt: &price,
	}, nil
}

// ComputeKegBulk venta de barril cerrado: ingreso = barriles * precio del barril;
// lucro = ingreso − barriles * costo promedio.
func ComputeKegBulk(product *entity.Product, p Payload, avgCost decimal.Decimal) (Outcome, error) {
	if p.KegsSold == nil {
		return Outcome{}, fmt.Errorf("%w: %s es obligatorio para ventas %s", domain.ErrValidation, FieldKegsSold, entity.SaleTypeKegBulk)
	}
	kegs := *p.KegsSold
	revenue := kegs.Mul(product.KegPrice)
	cost := avgCost
	return Outcome{
		Revenue:      revenue,
		Profit:       revenue.Sub(kegs.Mul(avgCost)),
		Liters:       kegs.Mul(product.KegVolumeLiters),
		KegsDepleted: kegs,
		MovementKind: entity.MovementSaleKegBulk,
		UnitCost:     &cost,
	}, nil
}
