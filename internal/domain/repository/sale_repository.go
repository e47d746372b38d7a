package repository

import "github.com/frigoerp/frigorifico-api/internal/domain/entity"

// SaleRepository porta de persistência de vendas.
// Depois de criada, a venda só muda no sub-registro fiscal e no status de pagamento.
type SaleRepository interface {
	Create(s *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	UpdateFiscal(saleID string, f *entity.FiscalRecord) error
	UpdateStatus(saleID, status string) error
	List(limit, offset int) ([]*entity.Sale, error)
}
