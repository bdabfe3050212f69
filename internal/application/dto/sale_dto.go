package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest body para POST /api/sales.
// Type acepta loose | keg-bulk y los alias del formulario (feira | barril_festas).
// Los campos obligatorios según el tipo se validan en el caso de uso.
type RecordSaleRequest struct {
	Date        string   `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	ProductID   string   `json:"product_id" form:"product_id" validate:"required"`
	Type        string   `json:"type" form:"type" validate:"required"`
	Total       *float64 `json:"total" form:"total" validate:"omitempty,finite"`
	KegsSold    *float64 `json:"kegs_sold" form:"kegs_sold" validate:"omitempty,finite"`
	StaffCost   *float64 `json:"staff_cost" form:"staff_cost" validate:"omitempty,finite"`
	CupsCost    *float64 `json:"cups_cost" form:"cups_cost" validate:"omitempty,finite"`
	InvoiceCost *float64 `json:"invoice_cost" form:"invoice_cost" validate:"omitempty,finite"`
	Card        *float64 `json:"card" form:"card" validate:"omitempty,finite"`
	Cash        *float64 `json:"cash" form:"cash" validate:"omitempty,finite"`
	Pix         *float64 `json:"pix" form:"pix" validate:"omitempty,finite"`
	Notes       string   `json:"notes" form:"notes" validate:"max=1000"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	Weekday      string           `json:"weekday"`
	ProductID    string           `json:"product_id"`
	Type         string           `json:"type"`
	Total        decimal.Decimal  `json:"total"`
	Profit       decimal.Decimal  `json:"profit"`
	KegsDepleted *decimal.Decimal `json:"kegs_depleted,omitempty"`
	LiterPriceAt *decimal.Decimal `json:"liter_price_at,omitempty"`
	StaffCost    *decimal.Decimal `json:"staff_cost,omitempty"`
	CupsCost     *decimal.Decimal `json:"cups_cost,omitempty"`
	InvoiceCost  *decimal.Decimal `json:"invoice_cost,omitempty"`
	Card         *decimal.Decimal `json:"card,omitempty"`
	Cash         *decimal.Decimal `json:"cash,omitempty"`
	Pix          *decimal.Decimal `json:"pix,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}
