package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettleRequest baixa de um título contra uma conta bancária.
type SettleRequest struct {
	BankAccountID string `json:"bank_account_id"`
}

// TitleResponse título a receber ou a pagar.
type TitleResponse struct {
	ID           string          `json:"id"`
	Counterparty string          `json:"counterparty"`
	ReferenceID  string          `json:"reference_id"`
	Category     string          `json:"category,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	IssueDate    time.Time       `json:"issue_date"`
	DueDate      time.Time       `json:"due_date"`
	Installment  int             `json:"installment,omitempty"`
	Status       string          `json:"status"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

// TitleListResponse listagem paginada de títulos.
type TitleListResponse struct {
	Items []TitleResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateBankAccountRequest cadastro de conta bancária.
type CreateBankAccountRequest struct {
	Name           string          `json:"name"`
	Bank           string          `json:"bank"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// BankAccountResponse conta bancária.
type BankAccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Bank           string          `json:"bank"`
	Balance        decimal.Decimal `json:"balance"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Active         bool            `json:"active"`
}

// BankEntryResponse lançamento bancário com saldos antes/depois.
type BankEntryResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"saldo_anterior"`
	NewBalance      decimal.Decimal `json:"saldo_novo"`
	Description     string          `json:"description,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	Date            time.Time       `json:"date"`
}
