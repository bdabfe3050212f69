package repository

import (
	"context"
	"time"

	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// ListByDateRange devuelve las ventas con start <= date < end, en orden de registro
	// (fecha, creación, id).
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)
}
