// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORE_DRIVER=memory para desarrollo local.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/chopp-api/internal/application/inventory"
	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store almacén en memoria. Las transacciones se serializan con txMu y
// acumulan escrituras en un buffer que se publica solo si fn no falla.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	products  []*entity.Product
	movements []*entity.InventoryMovement
	sales     []*entity.Sale
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// txBuffer escrituras pendientes de una transacción.
type txBuffer struct {
	products  []*entity.Product
	movements []*entity.InventoryMovement
	sales     []*entity.Sale
}

// view acceso al almacén, opcionalmente dentro de una transacción.
type view struct {
	s  *Store
	tx *txBuffer
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{v: view{s: s}} }

// Movements repositorio de movimientos fuera de transacción.
func (s *Store) Movements() *InventoryMovementRepo { return &InventoryMovementRepo{v: view{s: s}} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{v: view{s: s}} }

// Run ejecuta fn con repos atados a un buffer; publica las escrituras si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	v := view{s: s, tx: &txBuffer{}}
	if err := fn(&ProductRepo{v: v}, &InventoryMovementRepo{v: v}, &SaleRepo{v: v}); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, v.tx.products...)
	s.movements = append(s.movements, v.tx.movements...)
	s.sales = append(s.sales, v.tx.sales...)
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ v view }

func (r *ProductRepo) all() []*entity.Product {
	r.v.s.mu.RLock()
	list := append([]*entity.Product(nil), r.v.s.products...)
	r.v.s.mu.RUnlock()
	if r.v.tx != nil {
		list = append(list, r.v.tx.products...)
	}
	return list
}

// Create persiste el producto; el nombre es único.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	cp := *product
	if r.v.tx != nil {
		if duplicated(r.all(), product) {
			return domain.ErrDuplicate
		}
		r.v.tx.products = append(r.v.tx.products, &cp)
		return nil
	}
	r.v.s.mu.Lock()
	defer r.v.s.mu.Unlock()
	if duplicated(r.v.s.products, product) {
		return domain.ErrDuplicate
	}
	r.v.s.products = append(r.v.s.products, &cp)
	return nil
}

func duplicated(list []*entity.Product, product *entity.Product) bool {
	for _, p := range list {
		if p.ID == product.ID || p.Name == product.Name {
			return true
		}
	}
	return false
}

// GetByID devuelve una copia del producto o (nil, nil).
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.all() {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetForUpdate igual que GetByID: la exclusión la da la serialización de transacciones.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// List devuelve el catálogo ordenado por nombre.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	src := r.all()
	out := make([]*entity.Product, 0, len(src))
	for _, p := range src {
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo libro de movimientos en memoria.
type InventoryMovementRepo struct{ v view }

func (r *InventoryMovementRepo) all() []*entity.InventoryMovement {
	r.v.s.mu.RLock()
	list := append([]*entity.InventoryMovement(nil), r.v.s.movements...)
	r.v.s.mu.RUnlock()
	if r.v.tx != nil {
		list = append(list, r.v.tx.movements...)
	}
	return list
}

// Create agrega un movimiento al libro.
func (r *InventoryMovementRepo) Create(_ context.Context, movement *entity.InventoryMovement) error {
	if !movement.Kind.IsValid() {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidArgument, movement.Kind)
	}
	cp := *movement
	if r.v.tx != nil {
		r.v.tx.movements = append(r.v.tx.movements, &cp)
		return nil
	}
	r.v.s.mu.Lock()
	defer r.v.s.mu.Unlock()
	r.v.s.movements = append(r.v.s.movements, &cp)
	return nil
}

func (r *InventoryMovementRepo) filter(keep func(*entity.InventoryMovement) bool) []*entity.InventoryMovement {
	var out []*entity.InventoryMovement
	for _, m := range r.all() {
		if keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

// ListByProduct movimientos de un producto en orden de registro.
func (r *InventoryMovementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.InventoryMovement, error) {
	return r.filter(func(m *entity.InventoryMovement) bool { return m.ProductID == productID }), nil
}

// ListByKind movimientos de un producto y tipo.
func (r *InventoryMovementRepo) ListByKind(_ context.Context, productID string, kind entity.MovementKind) ([]*entity.InventoryMovement, error) {
	return r.filter(func(m *entity.InventoryMovement) bool {
		return m.ProductID == productID && m.Kind == kind
	}), nil
}

// ListAll todos los movimientos.
func (r *InventoryMovementRepo) ListAll(_ context.Context) ([]*entity.InventoryMovement, error) {
	return r.filter(func(*entity.InventoryMovement) bool { return true }), nil
}

// ── Ventas ───────────────────────────────────────────────────────────────────

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct{ v view }

// Create persiste la venta.
func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	cp := *sale
	if r.v.tx != nil {
		r.v.tx.sales = append(r.v.tx.sales, &cp)
		return nil
	}
	r.v.s.mu.Lock()
	defer r.v.s.mu.Unlock()
	r.v.s.sales = append(r.v.s.sales, &cp)
	return nil
}

// ListByDateRange ventas con start <= date < end ordenadas por (fecha, creación, inserción).
func (r *SaleRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]*entity.Sale, error) {
	r.v.s.mu.RLock()
	src := append([]*entity.Sale(nil), r.v.s.sales...)
	r.v.s.mu.RUnlock()
	if r.v.tx != nil {
		src = append(src, r.v.tx.sales...)
	}
	var out []*entity.Sale
	for _, s := range src {
		if !s.Date.Before(start) && s.Date.Before(end) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
