package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa um funcionário.
type Employee struct {
	ID        string
	Name      string
	Position  string // magarefe, motorista, vendedor...
	TaxID     string
	Phone     string
	Salary    decimal.Decimal
	HiredAt   time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
