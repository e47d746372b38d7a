package purchases

import (
	"context"

	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// TxRunner executa o registro de compra dentro de uma transação de BD.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		purchaseRepo repository.PurchaseRepository,
		payableRepo repository.PayableRepository,
	) error) error
}
