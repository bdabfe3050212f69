package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType modalidad de la venta.
type SaleType string

const (
	SaleTypeLoose   SaleType = "loose"    // venta a granel (feria): se infiere el volumen por el ingreso
	SaleTypeKegBulk SaleType = "keg-bulk" // barril cerrado para fiestas
)

// Sale registro inmutable de una venta.
// Los medios de pago son informativos y no necesitan sumar Total.
type Sale struct {
	ID           string
	Date         time.Time
	Weekday      string // nombre en inglés derivado de Date (Monday..Sunday)
	ProductID    string
	Type         SaleType
	Total        decimal.Decimal
	Card         *decimal.Decimal
	Cash         *decimal.Decimal
	Pix          *decimal.Decimal
	StaffCost    *decimal.Decimal
	CupsCost     *decimal.Decimal
	InvoiceCost  *decimal.Decimal
	Profit       decimal.Decimal
	KegsDepleted *decimal.Decimal
	LiterPriceAt *decimal.Decimal // precio por litro vigente al momento de la venta (solo loose)
	Notes        string
	CreatedAt    time.Time
}
