package entity

import "time"

// Address endereço postal, usado por cliente, fornecedor e empresa (NF-e exige completo).
type Address struct {
	Street   string
	Number   string
	District string
	City     string
	CityCode string // código IBGE do município
	State    string // UF
	ZipCode  string
}

// Client representa um cliente (açougues, mercados, restaurantes).
type Client struct {
	ID                string
	Name              string
	TaxID             string // CNPJ ou CPF
	StateRegistration string // inscrição estadual
	Email             string
	Phone             string
	Address           Address
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
