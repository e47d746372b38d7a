package repository

import (
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

// BankAccountRepository porta de contas bancárias e seus lançamentos.
// Toda mudança de saldo acontece junto com um BankEntry na mesma transação.
type BankAccountRepository interface {
	Create(a *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	GetForUpdate(id string) (*entity.BankAccount, error)
	Update(a *entity.BankAccount) error
	UpdateBalance(id string, balance decimal.Decimal) error
	CreateEntry(e *entity.BankEntry) error
	ListEntries(accountID string, limit, offset int) ([]*entity.BankEntry, error)
	List(onlyActive bool) ([]*entity.BankAccount, error)
	Deactivate(id string) error
}
