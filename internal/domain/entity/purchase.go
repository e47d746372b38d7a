package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationalExpense é o fornecedor-sentinela usado quando a compra nasce de um
// lançamento de despesa operacional e não de um fornecedor cadastrado.
const OperationalExpense = "DESPESA_OPERACIONAL"

// Purchase representa uma compra de insumos ou animais.
// Estruturalmente simétrica à venda, mas incrementa estoque.
type Purchase struct {
	ID            string
	SupplierID    string // id de fornecedor ou OperationalExpense
	InvoiceNumber string // número da nota do fornecedor
	Date          time.Time
	Installments  int        // parcelas do pagamento (mínimo 1)
	FirstDueDate  *time.Time // vencimento da primeira parcela, quando a prazo
	Total         decimal.Decimal
	CreatedAt     time.Time
	CreatedBy     string
}

// PurchaseItem é uma linha da compra.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	Subtotal   decimal.Decimal
}
