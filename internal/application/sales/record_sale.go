// Package sales registra ventas: calcula ingreso, lucro y consumo de barriles
// y persiste movimiento y venta en una única transacción.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/chopp-api/internal/application/inventory"
	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	dominv "github.com/jhoicas/chopp-api/internal/domain/inventory"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
	domsales "github.com/jhoicas/chopp-api/internal/domain/sales"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// RecordSaleInput entrada del caso de uso. Type admite alias del formulario.
type RecordSaleInput struct {
	Date      time.Time
	ProductID string
	Type      string
	Payload   domsales.Payload
}

// RecordSaleUseCase registra ventas serializadas por producto.
// El lock por producto cubre lectura del histórico, cálculo y escritura;
// dentro de la tx además se bloquea la fila del producto (SELECT FOR UPDATE)
// para serializar entre instancias.
type RecordSaleUseCase struct {
	txRunner inventory.TxRunner
	locks    *productLocks
	log      *logger.Logger
	now      func() time.Time
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner inventory.TxRunner, log *logger.Logger) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner: txRunner,
		locks:    newProductLocks(),
		log:      log.Component("sales"),
		now:      time.Now,
	}
}

// RecordSale valida, calcula y persiste la venta con su movimiento de salida.
// Errores: domain.ErrValidation, ErrInvalidArgument, ErrNotFound, ErrDivisionUndefined.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in RecordSaleInput) (*entity.Sale, error) {
	saleType, err := domsales.ParseSaleType(in.Type)
	if err != nil {
		return nil, err
	}
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id es obligatorio", domain.ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date es obligatorio", domain.ErrValidation)
	}
	if err := domsales.Validate(saleType, in.Payload); err != nil {
		return nil, err
	}
	date := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, time.UTC)

	unlock := uc.locks.Lock(productID)
	defer unlock()

	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}

		out, err := uc.compute(ctx, movRepo, product, saleType, in.Payload)
		if err != nil {
			return err
		}

		now := uc.now()
		mov := &entity.InventoryMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Kind:      out.MovementKind,
			Quantity:  out.KegsDepleted,
			UnitCost:  out.UnitCost,
			Date:      date,
			Note:      "venta " + string(saleType),
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		kegs := out.KegsDepleted
		s := &entity.Sale{
			ID:           uuid.New().String(),
			Date:         date,
			Weekday:      domsales.WeekdayName(date),
			ProductID:    product.ID,
			Type:         saleType,
			Total:        out.Revenue,
			Card:         in.Payload.Card,
			Cash:         in.Payload.Cash,
			Pix:          in.Payload.Pix,
			StaffCost:    in.Payload.StaffCost,
			CupsCost:     in.Payload.CupsCost,
			InvoiceCost:  in.Payload.InvoiceCost,
			Profit:       out.Profit,
			KegsDepleted: &kegs,
			LiterPriceAt: out.LiterPriceAt,
			Notes:        in.Payload.Notes,
			CreatedAt:    now,
		}
		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("product_id", sale.ProductID).
		Str("type", string(sale.Type)).
		Str("total", sale.Total.StringFixed(2)).
		Str("profit", sale.Profit.StringFixed(2)).
		Str("kegs", sale.KegsDepleted.String()).
		Msg("venta registrada")
	return sale, nil
}

func (uc *RecordSaleUseCase) compute(
	ctx context.Context,
	movRepo repository.InventoryMovementRepository,
	product *entity.Product,
	saleType entity.SaleType,
	payload domsales.Payload,
) (domsales.Outcome, error) {
	switch saleType {
	case entity.SaleTypeLoose:
		return domsales.ComputeLoose(product, payload)
	case entity.SaleTypeKegBulk:
		entries, err := movRepo.ListByKind(ctx, product.ID, entity.MovementIn)
		if err != nil {
			return domsales.Outcome{}, err
		}
		return domsales.ComputeKegBulk(product, payload, dominv.WeightedAverageCost(entries))
	}
	return domsales.Outcome{}, fmt.Errorf("%w: tipo de venta %q", domain.ErrInvalidArgument, saleType)
}
