package entity

import "time"

// Supplier representa um fornecedor (pecuaristas, insumos, serviços).
type Supplier struct {
	ID                string
	Name              string
	TaxID             string
	StateRegistration string
	Email             string
	Phone             string
	Address           Address
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
