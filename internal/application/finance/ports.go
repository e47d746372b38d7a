package finance

import (
	"context"

	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// TxRunner executa a baixa de títulos dentro de uma transação de BD.
type TxRunner interface {
	RunSettlement(ctx context.Context, fn func(
		receivableRepo repository.ReceivableRepository,
		payableRepo repository.PayableRepository,
		bankRepo repository.BankAccountRepository,
	) error) error
}
