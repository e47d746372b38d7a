package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de títulos financeiros (contas a receber e a pagar).
const (
	TitleStatusPending = "PENDENTE"
	TitleStatusPaid    = "PAGO"
)

// Receivable é um título a receber. Exatamente um por venda a prazo.
// Transita para PAGO só pela baixa (settlement), que também lança na conta bancária.
type Receivable struct {
	ID            string
	ClientID      string
	SaleID        string
	Amount        decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Status        string // PENDENTE | PAGO
	PaidAt        *time.Time
	BankAccountID *string // conta usada na baixa
	CreatedAt     time.Time
}
