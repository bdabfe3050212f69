package dto

import "github.com/shopspring/decimal"

// RegisterEntryRequest body para POST /api/inventory/entries.
type RegisterEntryRequest struct {
	ProductID string   `json:"product_id" form:"product_id" validate:"required"`
	Quantity  *float64 `json:"quantity" form:"quantity" validate:"required,finite,gt=0"`
	UnitCost  *float64 `json:"unit_cost" form:"unit_cost" validate:"required,finite,gte=0"`
	Date      string   `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
}

// RegisterManualOutRequest body para POST /api/inventory/manual-outs.
type RegisterManualOutRequest struct {
	ProductID string   `json:"product_id" form:"product_id" validate:"required"`
	Quantity  *float64 `json:"quantity" form:"quantity" validate:"required,finite,gt=0"`
	Date      string   `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Note      string   `json:"note" form:"note" validate:"max=500"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Kind      string           `json:"kind"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
	Date      string           `json:"date"`
	Note      string           `json:"note,omitempty"`
}

// StockResponse stock derivado de un producto.
// Alert indica stock negativo.
type StockResponse struct {
	ProductID  string           `json:"product_id"`
	Name       string           `json:"name"`
	Kegs       decimal.Decimal  `json:"kegs"`
	Liters     decimal.Decimal  `json:"liters"`
	LiterPrice *decimal.Decimal `json:"liter_price"`
	KegPrice   decimal.Decimal  `json:"keg_price"`
	Alert      bool             `json:"alert"`
}

// StockListResponse stock de todo el catálogo.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
}
