package purchases

import (
	"context"
	"testing"
	"time"

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
	store.Products["prod-boi"] = &entity.Product{
		ID: "prod-boi", Name: "Boi Vivo", UnitID: "kg",
		Quantity: dec("100"), UnitCost: dec("10"),
		Sellable: false, Active: true,
	}
	return store
}

func newUseCase(store *apptest.Store) *RegisterPurchaseUseCase {
	return NewRegisterPurchaseUseCase(store, store.SupplierRepo(), store.PurchaseRepo())
}

func TestRegisterPurchase_AtualizaEstoqueECustoMedio(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	resp, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		SupplierID:    "forn-1",
		InvoiceNumber: "NF-123",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-boi", Quantity: dec("50"), UnitCost: dec("16")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(dec("800")))

	// 100@10 + 50@16 => 150@12
	p := store.Products["prod-boi"]
	assert.True(t, p.Quantity.Equal(dec("150")))
	assert.True(t, p.UnitCost.Equal(dec("12")), "custo médio = %s", p.UnitCost)

	movs, err := store.MovementRepo().ListByReference(resp.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEntry, movs[0].Type)
	assert.True(t, movs[0].Quantity.Equal(dec("50")))
}

func TestRegisterPurchase_ParcelasFechamNoTotal(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	first := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		SupplierID:    "forn-1",
		InvoiceNumber: "NF-456",
		Installments:  3,
		FirstDueDate:  &first,
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-boi", Quantity: dec("10"), UnitCost: dec("10")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(dec("100")))

	payables, err := store.PayableRepo().List("", 100, 0)
	require.NoError(t, err)
	require.Len(t, payables, 3)

	byOrdinal := map[int]*entity.Payable{}
	var sum decimal.Decimal
	for _, p := range payables {
		byOrdinal[p.Installment] = p
		sum = sum.Add(p.Amount)
		assert.Equal(t, entity.TitleStatusPending, p.Status)
		assert.Equal(t, "NF-456", p.Category)
		assert.Equal(t, "forn-1", p.SupplierID)
	}
	// 100/3 = 33.33 + 33.33 + 33.34; a última absorve a sobra
	assert.True(t, sum.Equal(dec("100")), "soma das parcelas = %s", sum)
	assert.True(t, byOrdinal[1].Amount.Equal(dec("33.33")))
	assert.True(t, byOrdinal[2].Amount.Equal(dec("33.33")))
	assert.True(t, byOrdinal[3].Amount.Equal(dec("33.34")))

	// Vencimentos rolam mês a mês
	assert.Equal(t, first, byOrdinal[1].DueDate)
	assert.Equal(t, first.AddDate(0, 1, 0), byOrdinal[2].DueDate)
	assert.Equal(t, first.AddDate(0, 2, 0), byOrdinal[3].DueDate)
}

func TestRegisterPurchase_DespesaOperacionalSemFornecedor(t *testing.T) {
	store := seedStore()
	store.Products["prod-sal"] = &entity.Product{
		ID: "prod-sal", Name: "Sal Grosso", UnitID: "kg",
		Quantity: decimal.Zero, UnitCost: decimal.Zero, Active: true,
	}
	uc := newUseCase(store)

	first := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	resp, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		InvoiceNumber: "DESP-001",
		FirstDueDate:  &first,
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-sal", Quantity: dec("20"), UnitCost: dec("2.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OperationalExpense, resp.SupplierID)

	payables, err := store.PayableRepo().List("", 100, 0)
	require.NoError(t, err)
	require.Len(t, payables, 1)
	assert.Equal(t, entity.OperationalExpense, payables[0].SupplierID)
	assert.True(t, payables[0].Amount.Equal(dec("50")))

	// Produto zerado assume o custo da entrada
	assert.True(t, store.Products["prod-sal"].UnitCost.Equal(dec("2.50")))
}

func TestRegisterPurchase_SemVencimentoNaoGeraTitulos(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		SupplierID:    "forn-1",
		InvoiceNumber: "NF-789",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-boi", Quantity: dec("5"), UnitCost: dec("10")},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, store.Payables)
}

func TestRegisterPurchase_ProdutoInexistenteDesfazTudo(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		SupplierID:    "forn-1",
		InvoiceNumber: "NF-999",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-boi", Quantity: dec("10"), UnitCost: dec("10")},
			{ProductID: "prod-fantasma", Quantity: dec("1"), UnitCost: dec("1")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Empty(t, store.Purchases)
	assert.Empty(t, store.Movements)
	assert.True(t, store.Products["prod-boi"].Quantity.Equal(dec("100")))
	assert.True(t, store.Products["prod-boi"].UnitCost.Equal(dec("10")))
}

func TestRegisterPurchase_FornecedorInexistente(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		SupplierID:    "forn-fantasma",
		InvoiceNumber: "NF-000",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-boi", Quantity: dec("1"), UnitCost: dec("1")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterPurchase_LinhasRepetidasEncadeiamCustoMedio(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	resp, err := uc.RegisterPurchase(context.Background(), "user-1", dto.RegisterPurchaseRequest{
		SupplierID: "forn-1",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-boi", Quantity: dec("50"), UnitCost: dec("16")},
			{ProductID: "prod-boi", Quantity: dec("50"), UnitCost: dec("16")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(dec("1600")))

	// 100@10 + 50@16 => 150@12; + mais 50@16 => 200@13
	p := store.Products["prod-boi"]
	assert.True(t, p.Quantity.Equal(dec("200")), "quantidade = %s", p.Quantity)
	assert.True(t, p.UnitCost.Equal(dec("13")), "custo médio = %s", p.UnitCost)

	// Um movimento de ENTRADA por linha, total batendo com o delta do estoque
	movs, err := store.MovementRepo().ListByReference(resp.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	moved := movs[0].Quantity.Add(movs[1].Quantity)
	assert.True(t, moved.Equal(dec("100")))
}
