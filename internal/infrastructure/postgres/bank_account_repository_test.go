package postgres

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

func TestBankAccountRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankAccountRepository(mock)
	id := uuid.NewString()
	balance := decimal.RequireFromString("1350.00")
	query := regexp.QuoteMeta(`UPDATE bank_accounts SET balance = $2, updated_at = now() WHERE id = $1`)

	t.Run("sucesso", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, balance).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateBalance(id, balance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conta inexistente", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, balance).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateBalance(id, balance), domain.ErrBankAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBankAccountRepo_CreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankAccountRepository(mock)
	now := time.Now()
	e := &entity.BankEntry{
		ID:              uuid.NewString(),
		BankAccountID:   uuid.NewString(),
		Type:            entity.BankEntryCredit,
		Amount:          decimal.RequireFromString("200.00"),
		PreviousBalance: decimal.RequireFromString("1150.00"),
		NewBalance:      decimal.RequireFromString("1350.00"),
		Description:     "Recebimento venda",
		ReferenceID:     uuid.NewString(),
		Date:            now,
		CreatedAt:       now,
	}

	mock.ExpectExec(`INSERT INTO bank_entries`).
		WithArgs(e.ID, e.BankAccountID, e.Type, e.Amount, e.PreviousBalance, e.NewBalance,
			e.Description, e.ReferenceID, e.Date, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.CreateEntry(e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankAccountRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankAccountRepository(mock)
	now := time.Now()
	a := &entity.BankAccount{
		ID:             uuid.NewString(),
		Name:           "Conta Movimento",
		Bank:           "Sicoob",
		Balance:        decimal.RequireFromString("1150.00"),
		InitialBalance: decimal.RequireFromString("1000.00"),
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	query := regexp.QuoteMeta(`SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1 FOR UPDATE`)
	rows := pgxmock.NewRows([]string{
		"id", "name", "bank", "balance", "initial_balance", "active", "created_at", "updated_at",
	}).AddRow(a.ID, a.Name, a.Bank, a.Balance, a.InitialBalance, a.Active, a.CreatedAt, a.UpdatedAt)

	mock.ExpectQuery(query).WithArgs(a.ID).WillReturnRows(rows)

	got, err := repo.GetForUpdate(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
