package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tipo de movimiento del libro de inventario.
type MovementKind string

const (
	MovementIn          MovementKind = "in"                // entrada de barriles
	MovementManualOut   MovementKind = "manual-out"        // baja manual
	MovementSaleLoose   MovementKind = "sale-out-loose"    // consumo por venta a granel
	MovementSaleKegBulk MovementKind = "sale-out-keg-bulk" // venta de barril cerrado
)

// IsValid indica si el tipo pertenece al conjunto conocido.
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementIn, MovementManualOut, MovementSaleLoose, MovementSaleKegBulk:
		return true
	}
	return false
}

// IsOut indica si el movimiento resta stock.
func (k MovementKind) IsOut() bool {
	return k.IsValid() && k != MovementIn
}

// InventoryMovement registro inmutable del libro de inventario.
// Quantity siempre positiva (en barriles); el signo lo da Kind.
// UnitCost solo en entradas; en ventas de barril cerrado guarda el costo promedio informativo.
type InventoryMovement struct {
	ID        string
	ProductID string
	Kind      MovementKind
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal
	Date      time.Time
	Note      string
	CreatedAt time.Time
}
