package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest uma linha da compra.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// RegisterPurchaseRequest entrada para registrar uma compra.
// SupplierID vazio marca despesa operacional. Installments <= 0 vira 1.
// FirstDueDate presente gera títulos a pagar (um por parcela).
type RegisterPurchaseRequest struct {
	SupplierID    string                `json:"supplier_id,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	Date          time.Time             `json:"date"`
	Items         []PurchaseItemRequest `json:"items"`
	Installments  int                   `json:"installments,omitempty"`
	FirstDueDate  *time.Time            `json:"first_due_date,omitempty"`
}

// PurchaseItemResponse linha da compra na resposta.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse resposta completa de uma compra.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	SupplierID    string                 `json:"supplier_id"`
	InvoiceNumber string                 `json:"invoice_number"`
	Date          time.Time              `json:"date"`
	Installments  int                    `json:"installments"`
	FirstDueDate  *time.Time             `json:"first_due_date,omitempty"`
	Total         decimal.Decimal        `json:"total"`
	Items         []PurchaseItemResponse `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
}

// PurchaseListResponse listagem paginada.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
