package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento bancário.
const (
	BankEntryCredit = "CREDITO"
	BankEntryDebit  = "DEBITO"
)

// BankAccount é uma conta bancária da empresa. O saldo só muda através de
// lançamentos pareados (BankEntry) gravados na mesma transação da atualização.
type BankAccount struct {
	ID             string
	Name           string
	Bank           string // código/nome do banco
	Balance        decimal.Decimal
	InitialBalance decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BankEntry é um lançamento bancário com saldo anterior e novo, para auditoria.
// Append-only, como o livro de movimentações de estoque.
type BankEntry struct {
	ID              string
	BankAccountID   string
	Type            string // CREDITO | DEBITO
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal // saldoAnterior
	NewBalance      decimal.Decimal // saldoNovo
	Description     string
	ReferenceID     string // venda, título ou vazio
	Date            time.Time
	CreatedAt       time.Time
}
