package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// WeightedAverageCost costo promedio ponderado sobre TODO el histórico de entradas (servicio de dominio).
// CostoPromedio = Σ(cantidad_i * costo_i) / Σ(cantidad_i), solo entradas con costo informado.
// Si no hay cantidad recibida devuelve 0.
func WeightedAverageCost(movements []*entity.InventoryMovement) decimal.Decimal {
	num := decimal.Zero
	qty := decimal.Zero
	for _, m := range movements {
		if m == nil || m.Kind != entity.MovementIn || m.UnitCost == nil {
			continue
		}
		num = num.Add(m.Quantity.Mul(*m.UnitCost))
		qty = qty.Add(m.Quantity)
	}
	if qty.IsZero() {
		return decimal.Zero
	}
	return num.Div(qty)
}
