package inventory

import (
	"context"

	"github.com/jhoicas/chopp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error nada de lo escrito queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
