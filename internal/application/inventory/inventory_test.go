package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/application/apptest"
	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedStore() *apptest.Store {
	store := apptest.NewStore()
	store.Suppliers["forn-1"] = &entity.Supplier{ID: "forn-1", Name: "Fazenda Boa Vista", Active: true}
	store.Products["prod-picanha"] = &entity.Product{
		ID: "prod-picanha", Name: "Picanha Bovina", UnitID: "kg",
		Quantity: dec("10"), UnitCost: dec("32.50"), Sellable: true, Active: true,
	}
	store.Products["prod-costela"] = &entity.Product{
		ID: "prod-costela", Name: "Costela Bovina", UnitID: "kg",
		Quantity: dec("40"), UnitCost: dec("14"), Sellable: true, Active: true,
	}
	return store
}

func TestRegisterMovement_SaidaManual(t *testing.T) {
	store := seedStore()
	uc := NewMovementUseCase(store, store.MovementRepo())

	resp, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ProductID: "prod-picanha",
		Type:      entity.MovementTypeExit,
		Quantity:  dec("3"),
		Reason:    "Perda por vencimento",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeExit, resp.Type)
	assert.Empty(t, resp.ReferenceID)

	assert.True(t, store.Products["prod-picanha"].Quantity.Equal(dec("7")))
	require.Len(t, store.Movements, 1)
	assert.Equal(t, "Perda por vencimento", store.Movements[0].Reason)
}

func TestRegisterMovement_SaidaMaiorQueEstoque(t *testing.T) {
	store := seedStore()
	uc := NewMovementUseCase(store, store.MovementRepo())

	_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ProductID: "prod-picanha",
		Type:      entity.MovementTypeExit,
		Quantity:  dec("11"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, store.Products["prod-picanha"].Quantity.Equal(dec("10")))
	assert.Empty(t, store.Movements)
}

func TestRegisterMovement_EntradaNaoMexeNoCusto(t *testing.T) {
	store := seedStore()
	uc := NewMovementUseCase(store, store.MovementRepo())

	_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ProductID: "prod-picanha",
		Type:      entity.MovementTypeEntry,
		Quantity:  dec("5"),
		Reason:    "Ajuste de inventário",
	})
	require.NoError(t, err)

	p := store.Products["prod-picanha"]
	assert.True(t, p.Quantity.Equal(dec("15")))
	assert.True(t, p.UnitCost.Equal(dec("32.50")))
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	store := seedStore()
	uc := NewMovementUseCase(store, store.MovementRepo())

	_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ProductID: "prod-picanha",
		Type:      "TRANSFERENCIA",
		Quantity:  dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterSlaughter_EntradasAtomicas(t *testing.T) {
	store := seedStore()
	uc := NewSlaughterUseCase(store, store.SupplierRepo(), store.SlaughterRepo())

	resp, err := uc.RegisterSlaughter(context.Background(), "user-1", dto.RegisterSlaughterRequest{
		SupplierID:    "forn-1",
		Lot:           "L-2026-08",
		AnimalCount:   4,
		LiveWeight:    dec("1800"),
		CarcassWeight: dec("972"),
		Items: []dto.SlaughterItemRequest{
			{ProductID: "prod-picanha", Quantity: dec("28")},
			{ProductID: "prod-costela", Quantity: dec("160")},
		},
	})
	require.NoError(t, err)

	// Rendimento 972/1800 = 0.54
	assert.True(t, resp.Yield.Equal(dec("0.54")), "rendimento = %s", resp.Yield)

	assert.True(t, store.Products["prod-picanha"].Quantity.Equal(dec("38")))
	assert.True(t, store.Products["prod-costela"].Quantity.Equal(dec("200")))

	movs, err := store.MovementRepo().ListByReference(resp.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementTypeEntry, m.Type)
	}
	require.Len(t, store.SlaughterItems, 2)
}

func TestRegisterSlaughter_ProdutoInexistenteDesfazTudo(t *testing.T) {
	store := seedStore()
	uc := NewSlaughterUseCase(store, store.SupplierRepo(), store.SlaughterRepo())

	_, err := uc.RegisterSlaughter(context.Background(), "user-1", dto.RegisterSlaughterRequest{
		SupplierID:    "forn-1",
		Lot:           "L-2026-09",
		AnimalCount:   2,
		LiveWeight:    dec("900"),
		CarcassWeight: dec("480"),
		Items: []dto.SlaughterItemRequest{
			{ProductID: "prod-picanha", Quantity: dec("14")},
			{ProductID: "prod-fantasma", Quantity: dec("1")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Empty(t, store.Slaughters)
	assert.Empty(t, store.SlaughterItems)
	assert.Empty(t, store.Movements)
	assert.True(t, store.Products["prod-picanha"].Quantity.Equal(dec("10")))
}

func TestRegisterSlaughter_CarcacaMaiorQueVivo(t *testing.T) {
	store := seedStore()
	uc := NewSlaughterUseCase(store, store.SupplierRepo(), store.SlaughterRepo())

	_, err := uc.RegisterSlaughter(context.Background(), "user-1", dto.RegisterSlaughterRequest{
		SupplierID:    "forn-1",
		Lot:           "L-X",
		AnimalCount:   1,
		LiveWeight:    dec("400"),
		CarcassWeight: dec("500"),
		Items: []dto.SlaughterItemRequest{
			{ProductID: "prod-picanha", Quantity: dec("1")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
