package repository

import (
	"context"

	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// InventoryMovementRepository puerto del libro de movimientos (solo inserción).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.InventoryMovement, error)
	ListByKind(ctx context.Context, productID string, kind entity.MovementKind) ([]*entity.InventoryMovement, error)
	ListAll(ctx context.Context) ([]*entity.InventoryMovement, error)
}
