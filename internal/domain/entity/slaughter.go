package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slaughter é um lote de abate. A produção do lote entra no estoque
// atomicamente: um Movement de ENTRADA por produto produzido.
type Slaughter struct {
	ID            string
	SupplierID    string
	Lot           string
	AnimalCount   int
	LiveWeight    decimal.Decimal // kg vivo
	CarcassWeight decimal.Decimal // kg carcaça
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}

// Yield devolve o rendimento do abate (carcaça / vivo), zero se peso vivo for zero.
func (s *Slaughter) Yield() decimal.Decimal {
	if s.LiveWeight.IsZero() {
		return decimal.Zero
	}
	return s.CarcassWeight.Div(s.LiveWeight)
}

// SlaughterItem é um produto resultante do abate (cortes, miúdos, couro...).
type SlaughterItem struct {
	ID          string
	SlaughterID string
	ProductID   string
	Quantity    decimal.Decimal
}
