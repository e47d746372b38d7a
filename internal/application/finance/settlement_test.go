package finance

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
	store.Accounts["acc-1"] = &entity.BankAccount{
		ID: "acc-1", Name: "Conta Movimento", Balance: dec("150"), Active: true,
	}
	store.Receivables["rec-1"] = &entity.Receivable{
		ID:       "rec-1",
		ClientID: "cli-1",
		SaleID:   "venda-1",
		Amount:   dec("200"),
		DueDate:  time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC),
		Status:   entity.TitleStatusPending,
	}
	store.Payables["pag-1"] = &entity.Payable{
		ID:         "pag-1",
		SupplierID: "forn-1",
		PurchaseID: "compra-1",
		Category:   "NF-123",
		Amount:     dec("80"),
		DueDate:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Status:     entity.TitleStatusPending,
	}
	return store
}

func newUseCase(store *apptest.Store) *SettlementUseCase {
	return NewSettlementUseCase(store, store.ReceivableRepo(), store.PayableRepo())
}

func TestSettleReceivable_CreditaContaEMarcaPago(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	resp, err := uc.SettleReceivable(context.Background(), "rec-1", dto.SettleRequest{BankAccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.TitleStatusPaid, resp.Status)
	require.NotNil(t, resp.PaidAt)

	// Saldo 150 -> 350 com lançamento pareado
	assert.True(t, store.Accounts["acc-1"].Balance.Equal(dec("350")))
	require.Len(t, store.Entries, 1)
	entry := store.Entries[0]
	assert.Equal(t, entity.BankEntryCredit, entry.Type)
	assert.True(t, entry.Amount.Equal(dec("200")))
	assert.True(t, entry.PreviousBalance.Equal(dec("150")))
	assert.True(t, entry.NewBalance.Equal(dec("350")))
	assert.Equal(t, "rec-1", entry.ReferenceID)

	rec := store.Receivables["rec-1"]
	assert.Equal(t, entity.TitleStatusPaid, rec.Status)
	require.NotNil(t, rec.BankAccountID)
	assert.Equal(t, "acc-1", *rec.BankAccountID)
}

func TestSettleReceivable_SegundaBaixaFalhaSemMudarNada(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.SettleReceivable(context.Background(), "rec-1", dto.SettleRequest{BankAccountID: "acc-1"})
	require.NoError(t, err)

	_, err = uc.SettleReceivable(context.Background(), "rec-1", dto.SettleRequest{BankAccountID: "acc-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

	// A segunda tentativa não gera novo lançamento nem mexe no saldo
	assert.True(t, store.Accounts["acc-1"].Balance.Equal(dec("350")))
	assert.Len(t, store.Entries, 1)
}

func TestSettlePayable_DebitaConta(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	resp, err := uc.SettlePayable(context.Background(), "pag-1", dto.SettleRequest{BankAccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.TitleStatusPaid, resp.Status)
	assert.Equal(t, "NF-123", resp.Category)

	assert.True(t, store.Accounts["acc-1"].Balance.Equal(dec("70")))
	require.Len(t, store.Entries, 1)
	entry := store.Entries[0]
	assert.Equal(t, entity.BankEntryDebit, entry.Type)
	assert.True(t, entry.PreviousBalance.Equal(dec("150")))
	assert.True(t, entry.NewBalance.Equal(dec("70")))
}

func TestSettlePayable_SaldoPodeFicarNegativo(t *testing.T) {
	store := seedStore()
	store.Accounts["acc-1"].Balance = dec("50")
	uc := newUseCase(store)

	_, err := uc.SettlePayable(context.Background(), "pag-1", dto.SettleRequest{BankAccountID: "acc-1"})
	require.NoError(t, err)
	assert.True(t, store.Accounts["acc-1"].Balance.Equal(dec("-30")))
}

func TestSettle_TituloInexistente(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.SettleReceivable(context.Background(), "rec-fantasma", dto.SettleRequest{BankAccountID: "acc-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SettlePayable(context.Background(), "pag-fantasma", dto.SettleRequest{BankAccountID: "acc-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettle_ContaInexistenteDesfazTudo(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.SettleReceivable(context.Background(), "rec-1", dto.SettleRequest{BankAccountID: "acc-fantasma"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBankAccountNotFound)

	// Título segue pendente
	assert.Equal(t, entity.TitleStatusPending, store.Receivables["rec-1"].Status)
	assert.Empty(t, store.Entries)
}

func TestSettle_SemConta(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.SettleReceivable(context.Background(), "rec-1", dto.SettleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListTitles_FiltroPorStatus(t *testing.T) {
	store := seedStore()
	uc := newUseCase(store)

	_, err := uc.SettleReceivable(context.Background(), "rec-1", dto.SettleRequest{BankAccountID: "acc-1"})
	require.NoError(t, err)

	pending, err := uc.ListReceivables(context.Background(), entity.TitleStatusPending, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, pending.Items)

	paid, err := uc.ListReceivables(context.Background(), entity.TitleStatusPaid, 20, 0)
	require.NoError(t, err)
	require.Len(t, paid.Items, 1)
	assert.Equal(t, "rec-1", paid.Items[0].ID)

	payables, err := uc.ListPayables(context.Background(), entity.TitleStatusPending, 20, 0)
	require.NoError(t, err)
	require.Len(t, payables.Items, 1)
	assert.Equal(t, "pag-1", payables.Items[0].ID)
}
