package reports

import (
	"context"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// ReceiptGenerator gera o PDF do recibo de uma venda.
type ReceiptGenerator interface {
	Generate(company *entity.Company, client *entity.Client, sale *entity.Sale, items []*entity.SaleItem, products map[string]*entity.Product) ([]byte, error)
}

// ReceiptUseCase monta os dados e delega a renderização do recibo ao gerador.
type ReceiptUseCase struct {
	generator   ReceiptGenerator
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewReceiptUseCase constrói o caso de uso.
func NewReceiptUseCase(
	generator ReceiptGenerator,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		generator:   generator,
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
	}
}

// SaleReceipt gera o PDF do recibo da venda.
func (uc *ReceiptUseCase) SaleReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}

	products := map[string]*entity.Product{}
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			products[product.ID] = product
		}
	}

	return uc.generator.Generate(company, client, sale, items, products)
}
