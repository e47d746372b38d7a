package entity

import "time"

// Company é a empresa emissora: dados cadastrais e fiscais usados na NF-e.
type Company struct {
	ID                string
	CorporateName     string // razão social
	TradeName         string // nome fantasia
	CNPJ              string
	StateRegistration string
	TaxRegime         string // "1" simples nacional, "3" regime normal (CRT)
	Address           Address
	Phone             string
	Email             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
