package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frigoerp/frigorifico-api/internal/application/finance"
	appinventory "github.com/frigoerp/frigorifico-api/internal/application/inventory"
	"github.com/frigoerp/frigorifico-api/internal/application/purchases"
	"github.com/frigoerp/frigorifico-api/internal/application/sales"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)
var _ purchases.TxRunner = (*TxRunner)(nil)
var _ finance.TxRunner = (*TxRunner)(nil)
var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, entregando
// repositórios atados à transação. Falha de serialização vira ErrConflict.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale transação do núcleo de venda.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	receivableRepo repository.ReceivableRepository,
	bankRepo repository.BankAccountRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(
			NewProductRepository(q),
			NewMovementRepository(q),
			NewSaleRepository(q),
			NewReceivableRepository(q),
			NewBankAccountRepository(q),
		)
	})
}

// RunPurchase transação do registro de compra.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	purchaseRepo repository.PurchaseRepository,
	payableRepo repository.PayableRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(
			NewProductRepository(q),
			NewMovementRepository(q),
			NewPurchaseRepository(q),
			NewPayableRepository(q),
		)
	})
}

// RunSettlement transação da baixa de títulos.
func (r *TxRunner) RunSettlement(ctx context.Context, fn func(
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
	bankRepo repository.BankAccountRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(
			NewReceivableRepository(q),
			NewPayableRepository(q),
			NewBankAccountRepository(q),
		)
	})
}

// RunInventory transação de movimentos manuais e lotes de abate.
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	slaughterRepo repository.SlaughterRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(
			NewProductRepository(q),
			NewMovementRepository(q),
			NewSlaughterRepository(q),
		)
	})
}
