package repository

import (
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

// ProductRepository porta de persistência de produtos.
// GetForUpdate deve bloquear a linha (SELECT FOR UPDATE) para serializar
// vendas concorrentes sobre o mesmo produto dentro da transação.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(p *entity.Product) error
	UpdateStock(id string, quantity decimal.Decimal) error
	UpdateCost(id string, cost decimal.Decimal) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Deactivate(id string) error
}
