package usecase

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
	"github.com/jhoicas/chopp-api/internal/domain/repository"
)

// ProductUseCase catálogo de chopps. El stock se deriva de los movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El volumen del barril por defecto es 50 L.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrValidation)
	}
	kegPrice := dto.Decimal(in.KegPrice)
	if kegPrice == nil {
		return nil, fmt.Errorf("%w: keg_price es obligatorio", domain.ErrValidation)
	}
	literPrice := dto.Decimal(in.LiterPrice)
	if kegPrice.IsNegative() || (literPrice != nil && literPrice.IsNegative()) {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrValidation)
	}
	volume := entity.DefaultKegVolumeLiters
	if v := dto.Decimal(in.KegVolumeLiters); v != nil {
		if !v.IsPositive() {
			return nil, fmt.Errorf("%w: keg_volume_liters debe ser mayor que cero", domain.ErrValidation)
		}
		volume = *v
	}

	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            name,
		LiterPrice:      literPrice,
		KegPrice:        *kegPrice,
		KegVolumeLiters: volume,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo ordenado por nombre.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve el producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	var literPrice *decimal.Decimal
	if p.LiterPrice != nil {
		lp := *p.LiterPrice
		literPrice = &lp
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		LiterPrice:      literPrice,
		KegPrice:        p.KegPrice,
		KegVolumeLiters: p.KegVolumeLiters,
		CreatedAt:       p.CreatedAt,
	}
}
