package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (JSON o formulario).
type CreateProductRequest struct {
	Name            string   `json:"name" form:"name" validate:"required,min=1,max=120"`
	KegPrice        *float64 `json:"keg_price" form:"keg_price" validate:"required,finite,gte=0"`
	LiterPrice      *float64 `json:"liter_price" form:"liter_price" validate:"omitempty,finite,gte=0"`
	KegVolumeLiters *float64 `json:"keg_volume_liters" form:"keg_volume_liters" validate:"omitempty,finite,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	LiterPrice      *decimal.Decimal `json:"liter_price"`
	KegPrice        decimal.Decimal  `json:"keg_price"`
	KegVolumeLiters decimal.Decimal  `json:"keg_volume_liters"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
