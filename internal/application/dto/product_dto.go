package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cadastro de produto. Quantity e UnitCost iniciam em zero:
// estoque e custo só mudam por movimentações.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	UnitID    string          `json:"unit_id"`
	SalePrice decimal.Decimal `json:"sale_price"`
	NCM       string          `json:"ncm"`
	CFOP      string          `json:"cfop"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Sellable  bool            `json:"sellable"`
}

// UpdateProductRequest campos editáveis. Quantity e UnitCost ficam de fora de propósito.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	UnitID    *string          `json:"unit_id,omitempty"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
	NCM       *string          `json:"ncm,omitempty"`
	CFOP      *string          `json:"cfop,omitempty"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	Sellable  *bool            `json:"sellable,omitempty"`
}

// ProductResponse produto na resposta.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitID    string          `json:"unit_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	SalePrice decimal.Decimal `json:"sale_price"`
	NCM       string          `json:"ncm,omitempty"`
	CFOP      string          `json:"cfop,omitempty"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Sellable  bool            `json:"sellable"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse listagem paginada.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
