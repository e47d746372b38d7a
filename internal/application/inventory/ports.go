package inventory

import (
	"context"

	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// TxRunner executa operações de estoque dentro de uma transação de BD.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		slaughterRepo repository.SlaughterRepository,
	) error) error
}
