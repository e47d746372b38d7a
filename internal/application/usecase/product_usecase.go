package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// ProductUseCase CRUD do catálogo de produtos. Estoque e custo nunca são
// editados por aqui: só mudam pelo núcleo transacional de venda, compra,
// abate e movimento manual.
type ProductUseCase struct {
	repo     repository.ProductRepository
	unitRepo repository.UnitRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, unitRepo repository.UnitRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, unitRepo: unitRepo}
}

// Create cadastra um produto com estoque e custo zerados.
// Produto vendável precisa de NCM e CFOP para a NF-e sair depois.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UnitID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Sellable && (in.NCM == "" || in.CFOP == "") {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice.LessThan(decimal.Zero) || in.TaxRate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		UnitID:    in.UnitID,
		Quantity:  decimal.Zero,
		UnitCost:  decimal.Zero,
		SalePrice: in.SalePrice,
		NCM:       in.NCM,
		CFOP:      in.CFOP,
		TaxRate:   in.TaxRate,
		Sellable:  in.Sellable,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get devolve um produto pelo id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica os campos editáveis. Quantity e UnitCost não passam por aqui.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrNotFound
		}
		product.UnitID = *in.UnitID
	}
	if in.SalePrice != nil {
		if in.SalePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.NCM != nil {
		product.NCM = *in.NCM
	}
	if in.CFOP != nil {
		product.CFOP = *in.CFOP
	}
	if in.TaxRate != nil {
		product.TaxRate = *in.TaxRate
	}
	if in.Sellable != nil {
		product.Sellable = *in.Sellable
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista o catálogo.
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Deactivate desativa o produto; o histórico de movimentações permanece.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Deactivate(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		UnitID:    p.UnitID,
		Quantity:  p.Quantity,
		UnitCost:  p.UnitCost,
		SalePrice: p.SalePrice,
		NCM:       p.NCM,
		CFOP:      p.CFOP,
		TaxRate:   p.TaxRate,
		Sellable:  p.Sellable,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
