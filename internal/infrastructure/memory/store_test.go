package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
	"github.com/jhoicas/chopp-api/internal/infrastructure/memory"
)

func day(d int) time.Time { return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC) }

// Si fn falla, nada de lo escrito en la transacción queda visible.
func TestRun_RollbackDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.Run(ctx, func(_ repository.ProductRepository, movRepo repository.InventoryMovementRepository, saleRepo repository.SaleRepository) error {
		require.NoError(t, movRepo.Create(ctx, &entity.InventoryMovement{ID: "m1", ProductID: "p1", Kind: entity.MovementIn, Quantity: decimal.NewFromInt(1)}))
		require.NoError(t, saleRepo.Create(ctx, &entity.Sale{ID: "s1", Date: day(1)}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	movs, err := store.Movements().ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, movs)
	sales, err := store.Sales().ListByDateRange(ctx, day(1), day(2))
	require.NoError(t, err)
	assert.Empty(t, sales)
}

// Dentro de la transacción se leen las escrituras propias; al confirmar quedan visibles.
func TestRun_CommitPublica(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.Run(ctx, func(_ repository.ProductRepository, movRepo repository.InventoryMovementRepository, _ repository.SaleRepository) error {
		require.NoError(t, movRepo.Create(ctx, &entity.InventoryMovement{ID: "m1", ProductID: "p1", Kind: entity.MovementIn, Quantity: decimal.NewFromInt(2)}))
		own, err := movRepo.ListByKind(ctx, "p1", entity.MovementIn)
		require.NoError(t, err)
		assert.Len(t, own, 1)
		return nil
	})
	require.NoError(t, err)

	movs, err := store.Movements().ListByProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestProducts_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "Pilsen"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Product{ID: "p2", Name: "Pilsen"}), domain.ErrDuplicate)

	got, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProducts_ListOrdenadoPorNombre(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "Weiss"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p2", Name: "IPA"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "IPA", list[0].Name)
}

// Rango cerrado-abierto y orden por fecha y luego por registro.
func TestSales_ListByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Sales()
	base := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "late", Date: day(5), CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "first", Date: day(3), CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "second", Date: day(3), CreatedAt: base.Add(2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "out", Date: day(10), CreatedAt: base}))

	list, err := repo.ListByDateRange(ctx, day(3), day(10))
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"first", "second", "late"}, ids)
}

func TestMovements_TipoInvalido(t *testing.T) {
	err := memory.NewStore().Movements().Create(context.Background(), &entity.InventoryMovement{Kind: "loss"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
