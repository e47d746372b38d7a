// Package inventory contém os casos de uso de estoque fora do fluxo de
// venda/compra: movimentos manuais de ajuste e o registro de lotes de abate.
package inventory

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

// MovementUseCase registra movimentos manuais de estoque e consulta o livro.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RegisterMovement lança um movimento manual (perda, ajuste de inventário,
// consumo interno). SAIDA verifica suficiência sob o mesmo bloqueio de linha
// do núcleo de venda; ENTRADA não mexe no custo médio, isso é papel da compra.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Date:      now,
		CreatedAt: now,
		CreatedBy: userID,
	}

	err := uc.txRunner.RunInventory(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		_ repository.SlaughterRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.Active {
			return domain.ErrProductNotFound
		}

		newQty := product.Quantity
		if in.Type == entity.MovementTypeEntry {
			newQty = newQty.Add(in.Quantity)
		} else {
			if product.Quantity.LessThan(in.Quantity) {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.Quantity,
					Requested:   in.Quantity,
				}
			}
			newQty = newQty.Sub(in.Quantity)
		}
		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(mov), nil
}

// ListByProduct devolve o histórico de movimentações de um produto.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	movs, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		ReferenceID: m.ReferenceID,
		Date:        m.Date,
	}
}
