package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// SlaughterUseCase registra lotes de abate. A produção do lote (cortes, miúdos,
// subprodutos) entra no estoque atomicamente, um movimento de ENTRADA por produto.
type SlaughterUseCase struct {
	txRunner      TxRunner
	supplierRepo  repository.SupplierRepository
	slaughterRepo repository.SlaughterRepository
}

// NewSlaughterUseCase constrói o caso de uso.
func NewSlaughterUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository, slaughterRepo repository.SlaughterRepository) *SlaughterUseCase {
	return &SlaughterUseCase{txRunner: txRunner, supplierRepo: supplierRepo, slaughterRepo: slaughterRepo}
}

// RegisterSlaughter grava o lote e incrementa o estoque de cada produto produzido.
func (uc *SlaughterUseCase) RegisterSlaughter(ctx context.Context, userID string, in dto.RegisterSlaughterRequest) (*dto.SlaughterResponse, error) {
	if in.AnimalCount <= 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.LiveWeight.LessThanOrEqual(decimal.Zero) || in.CarcassWeight.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CarcassWeight.GreaterThan(in.LiveWeight) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || !supplier.Active {
			return nil, domain.ErrNotFound
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()

	slaughter := &entity.Slaughter{
		ID:            uuid.New().String(),
		SupplierID:    in.SupplierID,
		Lot:           in.Lot,
		AnimalCount:   in.AnimalCount,
		LiveWeight:    in.LiveWeight,
		CarcassWeight: in.CarcassWeight,
		Date:          date,
		CreatedAt:     now,
		CreatedBy:     userID,
	}

	err := uc.txRunner.RunInventory(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		slaughterRepo repository.SlaughterRepository,
	) error {
		if err := slaughterRepo.Create(slaughter); err != nil {
			return err
		}
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Active {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
			}
			if err := slaughterRepo.CreateItem(&entity.SlaughterItem{
				ID:          uuid.New().String(),
				SlaughterID: slaughter.ID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
			}); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(product.ID, product.Quantity.Add(item.Quantity)); err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ProductID:   item.ProductID,
				Type:        entity.MovementTypeEntry,
				Quantity:    item.Quantity,
				Reason:      fmt.Sprintf("Abate lote %s", slaughter.Lot),
				ReferenceID: slaughter.ID,
				Date:        date,
				CreatedAt:   now,
				CreatedBy:   userID,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSlaughterResponse(slaughter, in.Items), nil
}

// GetSlaughter devolve o lote com os produtos resultantes.
func (uc *SlaughterUseCase) GetSlaughter(ctx context.Context, id string) (*dto.SlaughterResponse, error) {
	slaughter, err := uc.slaughterRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if slaughter == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.slaughterRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	reqs := make([]dto.SlaughterItemRequest, 0, len(items))
	for _, it := range items {
		reqs = append(reqs, dto.SlaughterItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return toSlaughterResponse(slaughter, reqs), nil
}

// ListSlaughters lista lotes paginados.
func (uc *SlaughterUseCase) ListSlaughters(ctx context.Context, limit, offset int) ([]dto.SlaughterResponse, error) {
	list, err := uc.slaughterRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SlaughterResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSlaughterResponse(s, nil))
	}
	return out, nil
}

func toSlaughterResponse(s *entity.Slaughter, items []dto.SlaughterItemRequest) *dto.SlaughterResponse {
	return &dto.SlaughterResponse{
		ID:            s.ID,
		SupplierID:    s.SupplierID,
		Lot:           s.Lot,
		AnimalCount:   s.AnimalCount,
		LiveWeight:    s.LiveWeight,
		CarcassWeight: s.CarcassWeight,
		Yield:         s.Yield().Round(4),
		Date:          s.Date,
		Items:         items,
		CreatedAt:     s.CreatedAt,
	}
}
