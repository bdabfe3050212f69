package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, date, weekday, product_id, type, total, card, cash, pix,
	staff_cost, cups_cost, invoice_cost, profit, kegs_depleted, liter_price_at, notes, created_at`

// SaleRepo ventas sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Date, sale.Weekday, sale.ProductID, string(sale.Type), sale.Total,
		sale.Card, sale.Cash, sale.Pix,
		sale.StaffCost, sale.CupsCost, sale.InvoiceCost,
		sale.Profit, sale.KegsDepleted, sale.LiterPriceAt, sale.Notes, sale.CreatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// ListByDateRange ventas con start <= date < end en orden (fecha, creación, id).
func (r *SaleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE date >= $1 AND date < $2
		ORDER BY date, created_at, id`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var saleType string
	err := row.Scan(&s.ID, &s.Date, &s.Weekday, &s.ProductID, &saleType, &s.Total,
		&s.Card, &s.Cash, &s.Pix,
		&s.StaffCost, &s.CupsCost, &s.InvoiceCost,
		&s.Profit, &s.KegsDepleted, &s.LiterPriceAt, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Type = entity.SaleType(saleType)
	s.Date = s.Date.UTC()
	return &s, nil
}
