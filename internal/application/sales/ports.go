package sales

import (
	"context"

	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD, passando repositórios
// atados a essa transação. Garante o tudo-ou-nada do registro de venda:
// estoque, livro, título e saldo bancário mudam juntos ou não mudam.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		receivableRepo repository.ReceivableRepository,
		bankRepo repository.BankAccountRepository,
	) error) error
}
