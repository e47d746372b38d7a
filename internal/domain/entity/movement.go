package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeEntry = "ENTRADA"
	MovementTypeExit  = "SAIDA"
)

// Movement é um lançamento do livro de movimentações de estoque.
// Append-only: nunca é alterado nem removido depois de gravado.
// Uma venda/compra gera exatamente um Movement por linha de produto.
type Movement struct {
	ID          string
	ProductID   string
	Type        string          // ENTRADA | SAIDA
	Quantity    decimal.Decimal // sempre positiva; o sinal vem do Type
	Reason      string          // memorando livre, costuma citar a origem
	ReferenceID string          // id da venda, compra, abate ou vazio (movimento manual)
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string
}
