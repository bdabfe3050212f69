package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultKegVolumeLiters volumen de un barril cuando no se informa.
var DefaultKegVolumeLiters = decimal.NewFromInt(50)

// Product representa un chopp del catálogo.
// LiterPrice es opcional: solo las ventas a granel (loose) lo necesitan.
type Product struct {
	ID              string
	Name            string
	LiterPrice      *decimal.Decimal // precio de venta por litro
	KegPrice        decimal.Decimal  // precio del barril cerrado
	KegVolumeLiters decimal.Decimal
	CreatedAt       time.Time
}
