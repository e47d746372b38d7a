package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest movimento manual de estoque (ENTRADA ou SAIDA).
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
}

// MovementResponse um lançamento do livro de movimentações.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Date        time.Time       `json:"date"`
}

// SlaughterItemRequest produto resultante do abate.
type SlaughterItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// RegisterSlaughterRequest entrada para registrar um lote de abate.
type RegisterSlaughterRequest struct {
	SupplierID    string                 `json:"supplier_id"`
	Lot           string                 `json:"lot"`
	AnimalCount   int                    `json:"animal_count"`
	LiveWeight    decimal.Decimal        `json:"live_weight"`
	CarcassWeight decimal.Decimal        `json:"carcass_weight"`
	Date          time.Time              `json:"date"`
	Items         []SlaughterItemRequest `json:"items"`
}

// SlaughterResponse resposta do lote de abate com rendimento calculado.
type SlaughterResponse struct {
	ID            string                 `json:"id"`
	SupplierID    string                 `json:"supplier_id"`
	Lot           string                 `json:"lot"`
	AnimalCount   int                    `json:"animal_count"`
	LiveWeight    decimal.Decimal        `json:"live_weight"`
	CarcassWeight decimal.Decimal        `json:"carcass_weight"`
	Yield         decimal.Decimal        `json:"yield"`
	Date          time.Time              `json:"date"`
	Items         []SlaughterItemRequest `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
}
