package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressDTO endereço postal completo (a NF-e exige todos os campos do destinatário).
type AddressDTO struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	CityCode string `json:"city_code"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

// CreateClientRequest / UpdateClientRequest cadastro de clientes.
type CreateClientRequest struct {
	Name              string     `json:"name"`
	TaxID             string     `json:"tax_id"`
	StateRegistration string     `json:"state_registration"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Address           AddressDTO `json:"address"`
}

type UpdateClientRequest struct {
	Name              *string     `json:"name,omitempty"`
	TaxID             *string     `json:"tax_id,omitempty"`
	StateRegistration *string     `json:"state_registration,omitempty"`
	Email             *string     `json:"email,omitempty"`
	Phone             *string     `json:"phone,omitempty"`
	Address           *AddressDTO `json:"address,omitempty"`
}

// ClientResponse cliente na resposta.
type ClientResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	TaxID             string     `json:"tax_id"`
	StateRegistration string     `json:"state_registration,omitempty"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Address           AddressDTO `json:"address"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ClientListResponse listagem paginada.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// Fornecedores reaproveitam os mesmos shapes de cliente.
type CreateSupplierRequest = CreateClientRequest
type UpdateSupplierRequest = UpdateClientRequest
type SupplierResponse = ClientResponse
type SupplierListResponse = ClientListResponse

// CreateEmployeeRequest cadastro de funcionário.
type CreateEmployeeRequest struct {
	Name     string          `json:"name"`
	Position string          `json:"position"`
	TaxID    string          `json:"tax_id"`
	Phone    string          `json:"phone"`
	Salary   decimal.Decimal `json:"salary"`
	HiredAt  time.Time       `json:"hired_at"`
}

type UpdateEmployeeRequest struct {
	Name     *string          `json:"name,omitempty"`
	Position *string          `json:"position,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
}

// EmployeeResponse funcionário na resposta.
type EmployeeResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Position string          `json:"position"`
	TaxID    string          `json:"tax_id,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Salary   decimal.Decimal `json:"salary"`
	HiredAt  time.Time       `json:"hired_at"`
	Active   bool            `json:"active"`
}

type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateUnitRequest unidade de medida.
type CreateUnitRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type UnitResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CompanyRequest dados da empresa emissora.
type CompanyRequest struct {
	CorporateName     string     `json:"corporate_name"`
	TradeName         string     `json:"trade_name"`
	CNPJ              string     `json:"cnpj"`
	StateRegistration string     `json:"state_registration"`
	TaxRegime         string     `json:"tax_regime"`
	Address           AddressDTO `json:"address"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
}

type CompanyResponse struct {
	ID                string     `json:"id"`
	CorporateName     string     `json:"corporate_name"`
	TradeName         string     `json:"trade_name"`
	CNPJ              string     `json:"cnpj"`
	StateRegistration string     `json:"state_registration"`
	TaxRegime         string     `json:"tax_regime"`
	Address           AddressDTO `json:"address"`
	Phone             string     `json:"phone,omitempty"`
	Email             string     `json:"email,omitempty"`
}
