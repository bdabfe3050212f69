package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	dominv "github.com/jhoicas/chopp-api/internal/domain/inventory"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// MovementUseCase entradas y bajas manuales del libro de inventario y consulta de stock.
type MovementUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	log *logger.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
		log:         log.Component("inventory"),
		now:         time.Now,
	}
}

// RegisterEntry registra la entrada de barriles con su costo unitario.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, in dto.RegisterEntryRequest) (*dto.MovementResponse, error) {
	qty, date, err := uc.validate(ctx, in.ProductID, in.Quantity, in.Date)
	if err != nil {
		return nil, err
	}
	cost := dto.Decimal(in.UnitCost)
	if cost == nil {
		return nil, fmt.Errorf("%w: unit_cost es obligatorio en entradas", domain.ErrValidation)
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: unit_cost no puede ser negativo", domain.ErrValidation)
	}
	return uc.record(ctx, &entity.InventoryMovement{
		ProductID: in.ProductID,
		Kind:      entity.MovementIn,
		Quantity:  qty,
		UnitCost:  cost,
		Date:      date,
	})
}

// RegisterManualOut registra una baja manual. No verifica stock: puede quedar negativo.
func (uc *MovementUseCase) RegisterManualOut(ctx context.Context, in dto.RegisterManualOutRequest) (*dto.MovementResponse, error) {
	qty, date, err := uc.validate(ctx, in.ProductID, in.Quantity, in.Date)
	if err != nil {
		return nil, err
	}
	out, err := uc.record(ctx, &entity.InventoryMovement{
		ProductID: in.ProductID,
		Kind:      entity.MovementManualOut,
		Quantity:  qty,
		Date:      date,
		Note:      strings.TrimSpace(in.Note),
	})
	if err != nil {
		return nil, err
	}
	if stock, err := uc.CurrentStock(ctx, in.ProductID); err == nil && dominv.IsAlert(stock) {
		uc.log.Warn().Str("product_id", in.ProductID).Str("stock", stock.String()).Msg("stock negativo tras baja manual")
	}
	return out, nil
}

func (uc *MovementUseCase) validate(ctx context.Context, productID string, quantity *float64, rawDate string) (decimal.Decimal, time.Time, error) {
	if strings.TrimSpace(productID) == "" {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: product_id es obligatorio", domain.ErrValidation)
	}
	qty := dto.Decimal(quantity)
	if qty == nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: quantity es obligatorio", domain.ErrValidation)
	}
	if !qty.IsPositive() {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrValidation)
	}
	date, err := dto.ParseDate(rawDate)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: date debe tener formato %s", domain.ErrValidation, dto.DateLayout)
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	if product == nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	return *qty, date, nil
}

func (uc *MovementUseCase) record(ctx context.Context, mov *entity.InventoryMovement) (*dto.MovementResponse, error) {
	mov.ID = uuid.New().String()
	mov.CreatedAt = uc.now()
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("product_id", mov.ProductID).
		Str("kind", string(mov.Kind)).
		Str("quantity", mov.Quantity.String()).
		Msg("movimiento registrado")
	return toMovementResponse(mov), nil
}

// CurrentStock stock derivado de un producto; se recalcula en cada llamada.
func (uc *MovementUseCase) CurrentStock(ctx context.Context, productID string) (decimal.Decimal, error) {
	movs, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	return dominv.CurrentStock(movs), nil
}

// CurrentStockAll stock de todo el catálogo con litros equivalentes. Los negativos se marcan como alerta.
func (uc *MovementUseCase) CurrentStockAll(ctx context.Context) (*dto.StockListResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stocks := dominv.StockByProduct(movs)

	out := &dto.StockListResponse{Items: make([]dto.StockResponse, 0, len(products))}
	for _, p := range products {
		kegs := stocks[p.ID]
		alert := dominv.IsAlert(kegs)
		if alert {
			uc.log.Warn().Str("product_id", p.ID).Str("name", p.Name).Str("stock", kegs.String()).Msg("stock negativo")
		}
		out.Items = append(out.Items, dto.StockResponse{
			ProductID:  p.ID,
			Name:       p.Name,
			Kegs:       kegs,
			Liters:     kegs.Mul(p.KegVolumeLiters),
			LiterPrice: p.LiterPrice,
			KegPrice:   p.KegPrice,
			Alert:      alert,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Kind:      string(m.Kind),
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Date:      m.Date.Format(dto.DateLayout),
		Note:      m.Note,
	}
}
