package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, product_id, kind, quantity, unit_cost, date, note, created_at`

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	if !movement.Kind.IsValid() {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidArgument, movement.Kind)
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `INSERT INTO inventory_movements (` + movementColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, string(movement.Kind), movement.Quantity,
		movement.UnitCost, movement.Date, movement.Note, movement.CreatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListByProduct movimientos de un producto en orden de registro.
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.InventoryMovement, error) {
	if !isUUID(productID) {
		return nil, nil
	}
	return r.list(ctx, `WHERE product_id = $1`, productID)
}

// ListByKind movimientos de un producto y tipo.
func (r *InventoryMovementRepo) ListByKind(ctx context.Context, productID string, kind entity.MovementKind) ([]*entity.InventoryMovement, error) {
	if !isUUID(productID) {
		return nil, nil
	}
	return r.list(ctx, `WHERE product_id = $1 AND kind = $2`, productID, string(kind))
}

// ListAll todos los movimientos.
func (r *InventoryMovementRepo) ListAll(ctx context.Context) ([]*entity.InventoryMovement, error) {
	return r.list(ctx, ``)
}

func (r *InventoryMovementRepo) list(ctx context.Context, where string, args ...any) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements ` + where + ` ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	var kind string
	if err := row.Scan(&m.ID, &m.ProductID, &kind, &m.Quantity, &m.UnitCost, &m.Date, &m.Note, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Kind = entity.MovementKind(kind)
	return &m, nil
}
