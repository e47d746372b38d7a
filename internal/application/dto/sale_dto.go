package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest uma linha da venda. UnitPrice zero usa o preço do catálogo.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RegisterSaleRequest entrada para registrar uma venda.
// PaymentCondition: "AVISTA" exige BankAccountID para lançar o recebimento;
// "APRAZO" com DueDate gera o título a receber.
type RegisterSaleRequest struct {
	ClientID         string            `json:"client_id"`
	Date             time.Time         `json:"date"`
	Items            []SaleItemRequest `json:"items"`
	PaymentCondition string            `json:"payment_condition"`
	DueDate          *time.Time        `json:"due_date,omitempty"`
	AdjustedTotal    *decimal.Decimal  `json:"adjusted_total,omitempty"`
	BankAccountID    string            `json:"bank_account_id,omitempty"`
}

// SaleItemResponse linha da venda na resposta, com o custo congelado.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// FiscalResponse sub-registro da NF-e na resposta.
type FiscalResponse struct {
	Ref      string `json:"ref"`
	Status   string `json:"status"`
	DanfeURL string `json:"danfe_url,omitempty"`
	XMLURL   string `json:"xml_url,omitempty"`
	Message  string `json:"message,omitempty"`
}

// SaleResponse resposta completa de uma venda.
type SaleResponse struct {
	ID               string             `json:"id"`
	ClientID         string             `json:"client_id"`
	Date             time.Time          `json:"date"`
	PaymentCondition string             `json:"payment_condition"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	Total            decimal.Decimal    `json:"total"`
	AdjustedTotal    *decimal.Decimal   `json:"adjusted_total,omitempty"`
	Status           string             `json:"status"`
	Items            []SaleItemResponse `json:"items"`
	Fiscal           *FiscalResponse    `json:"fiscal,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// SaleListResponse listagem paginada.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
