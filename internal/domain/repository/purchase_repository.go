package repository

import "github.com/frigoerp/frigorifico-api/internal/domain/entity"

// PurchaseRepository porta de persistência de compras.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	GetByID(id string) (*entity.Purchase, error)
	GetItems(purchaseID string) ([]*entity.PurchaseItem, error)
	List(limit, offset int) ([]*entity.Purchase, error)
}
