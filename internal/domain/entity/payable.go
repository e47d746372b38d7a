package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payable é um título a pagar, um por parcela da compra ou despesa.
// Category carrega o número da nota do fornecedor (ou rótulo da despesa).
type Payable struct {
	ID            string
	SupplierID    string // fornecedor ou OperationalExpense
	PurchaseID    string
	Category      string
	Amount        decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Installment   int // ordinal da parcela (1..N)
	Status        string
	PaidAt        *time.Time
	BankAccountID *string
	CreatedAt     time.Time
}
