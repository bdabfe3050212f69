package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// CurrentStock deriva el stock de un producto sumando su libro de movimientos:
// Σ(in) − Σ(manual-out) − Σ(sale-out-loose) − Σ(sale-out-keg-bulk).
// El orden de los movimientos no altera el resultado. Puede quedar negativo.
func CurrentStock(movements []*entity.InventoryMovement) decimal.Decimal {
	stock := decimal.Zero
	for _, m := range movements {
		if m == nil {
			continue
		}
		switch {
		case m.Kind == entity.MovementIn:
			stock = stock.Add(m.Quantity)
		case m.Kind.IsOut():
			stock = stock.Sub(m.Quantity)
		}
	}
	return stock
}

// StockByProduct agrupa movimientos de varios productos y deriva el stock de cada uno.
func StockByProduct(movements []*entity.InventoryMovement) map[string]decimal.Decimal {
	grouped := make(map[string][]*entity.InventoryMovement)
	for _, m := range movements {
		if m == nil {
			continue
		}
		grouped[m.ProductID] = append(grouped[m.ProductID], m)
	}
	out := make(map[string]decimal.Decimal, len(grouped))
	for id, list := range grouped {
		out[id] = CurrentStock(list)
	}
	return out
}

// IsAlert indica stock negativo: no bloquea operaciones pero debe señalarse.
func IsAlert(stock decimal.Decimal) bool {
	return stock.IsNegative()
}
