package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condições de pagamento de uma venda.
const (
	PaymentImmediate = "AVISTA"
	PaymentTerm      = "APRAZO"
)

// Status financeiro da venda.
const (
	SaleStatusPaid    = "PAGO"
	SaleStatusPending = "PENDENTE"
)

// Status da NF-e no sub-registro fiscal, conforme devolvidos pelo provedor.
const (
	NFeStatusAuthorized = "autorizado"
	NFeStatusProcessing = "processando_autorizacao"
	NFeStatusCancelled  = "cancelado"
	NFeStatusError      = "erro_autorizacao"
)

// Sale representa a cabeça de uma venda. Criada atomicamente pelo núcleo
// transacional; depois disso só o sub-registro fiscal e o status de pagamento mudam.
type Sale struct {
	ID               string
	ClientID         string
	Date             time.Time
	PaymentCondition string     // AVISTA | APRAZO
	DueDate          *time.Time // obrigatória quando APRAZO gera contas a receber
	Total            decimal.Decimal
	AdjustedTotal    *decimal.Decimal // valor final negociado, quando difere do Total
	Status           string           // PAGO | PENDENTE
	Fiscal           *FiscalRecord
	CreatedAt        time.Time
	CreatedBy        string
}

// FinalValue devolve o valor efetivo da venda: o ajustado quando presente, senão o Total.
func (s *Sale) FinalValue() decimal.Decimal {
	if s.AdjustedTotal != nil {
		return *s.AdjustedTotal
	}
	return s.Total
}

// SaleItem é uma linha da venda. UnitCost é um retrato congelado do custo do
// produto no momento da transação; edições posteriores do catálogo não o alteram.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	Subtotal  decimal.Decimal
}

// FiscalRecord é o sub-registro da NF-e emitida para a venda via gateway.
type FiscalRecord struct {
	Ref      string // referência gerada para o provedor
	Status   string // autorizado | processando_autorizacao | cancelado | erro_*
	DanfeURL string
	XMLURL   string
	Message  string // mensagem da SEFAZ ou do provedor, verbatim
}
