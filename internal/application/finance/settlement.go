// Package finance contém os casos de uso financeiros: baixa de títulos
// (contas a receber e a pagar) e gestão de contas bancárias.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// SettlementUseCase dá baixa em títulos contra uma conta bancária.
// O título é lido com bloqueio de linha dentro da transação, então duas baixas
// concorrentes do mesmo título serializam e a segunda falha com ErrAlreadyPaid.
type SettlementUseCase struct {
	txRunner       TxRunner
	receivableRepo repository.ReceivableRepository
	payableRepo    repository.PayableRepository
}

// NewSettlementUseCase constrói o caso de uso.
func NewSettlementUseCase(txRunner TxRunner, receivableRepo repository.ReceivableRepository, payableRepo repository.PayableRepository) *SettlementUseCase {
	return &SettlementUseCase{txRunner: txRunner, receivableRepo: receivableRepo, payableRepo: payableRepo}
}

// SettleReceivable baixa um título a receber: marca PAGO e credita o valor
// na conta com lançamento pareado.
func (uc *SettlementUseCase) SettleReceivable(ctx context.Context, id string, in dto.SettleRequest) (*dto.TitleResponse, error) {
	if in.BankAccountID == "" {
		return nil, domain.ErrInvalidInput
	}
	paidAt := time.Now()
	var settled *entity.Receivable

	err := uc.txRunner.RunSettlement(ctx, func(
		receivableRepo repository.ReceivableRepository,
		_ repository.PayableRepository,
		bankRepo repository.BankAccountRepository,
	) error {
		title, err := receivableRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if title == nil {
			return domain.ErrNotFound
		}
		if title.Status == entity.TitleStatusPaid {
			return domain.ErrAlreadyPaid
		}

		account, err := bankRepo.GetForUpdate(in.BankAccountID)
		if err != nil {
			return err
		}
		if account == nil || !account.Active {
			return domain.ErrBankAccountNotFound
		}
		newBalance := account.Balance.Add(title.Amount)
		if err := bankRepo.UpdateBalance(account.ID, newBalance); err != nil {
			return err
		}
		entry := &entity.BankEntry{
			ID:              uuid.New().String(),
			BankAccountID:   account.ID,
			Type:            entity.BankEntryCredit,
			Amount:          title.Amount,
			PreviousBalance: account.Balance,
			NewBalance:      newBalance,
			Description:     fmt.Sprintf("Recebimento título %s", title.ID),
			ReferenceID:     title.ID,
			Date:            paidAt,
			CreatedAt:       paidAt,
		}
		if err := bankRepo.CreateEntry(entry); err != nil {
			return err
		}
		if err := receivableRepo.MarkPaid(title.ID, in.BankAccountID, paidAt); err != nil {
			return err
		}
		title.Status = entity.TitleStatusPaid
		title.PaidAt = &paidAt
		settled = title
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receivableToTitle(settled), nil
}

// SettlePayable baixa um título a pagar: marca PAGO e debita o valor da conta.
// Saldo pode ficar negativo, conta em descoberto é decisão do financeiro.
func (uc *SettlementUseCase) SettlePayable(ctx context.Context, id string, in dto.SettleRequest) (*dto.TitleResponse, error) {
	if in.BankAccountID == "" {
		return nil, domain.ErrInvalidInput
	}
	paidAt := time.Now()
	var settled *entity.Payable

	err := uc.txRunner.RunSettlement(ctx, func(
		_ repository.ReceivableRepository,
		payableRepo repository.PayableRepository,
		bankRepo repository.BankAccountRepository,
	) error {
		title, err := payableRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if title == nil {
			return domain.ErrNotFound
		}
		if title.Status == entity.TitleStatusPaid {
			return domain.ErrAlreadyPaid
		}

		account, err := bankRepo.GetForUpdate(in.BankAccountID)
		if err != nil {
			return err
		}
		if account == nil || !account.Active {
			return domain.ErrBankAccountNotFound
		}
		newBalance := account.Balance.Sub(title.Amount)
		if err := bankRepo.UpdateBalance(account.ID, newBalance); err != nil {
			return err
		}
		entry := &entity.BankEntry{
			ID:              uuid.New().String(),
			BankAccountID:   account.ID,
			Type:            entity.BankEntryDebit,
			Amount:          title.Amount,
			PreviousBalance: account.Balance,
			NewBalance:      newBalance,
			Description:     fmt.Sprintf("Pagamento título %s", title.ID),
			ReferenceID:     title.ID,
			Date:            paidAt,
			CreatedAt:       paidAt,
		}
		if err := bankRepo.CreateEntry(entry); err != nil {
			return err
		}
		if err := payableRepo.MarkPaid(title.ID, in.BankAccountID, paidAt); err != nil {
			return err
		}
		title.Status = entity.TitleStatusPaid
		title.PaidAt = &paidAt
		settled = title
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payableToTitle(settled), nil
}

// ListReceivables lista títulos a receber, com filtro opcional por status.
func (uc *SettlementUseCase) ListReceivables(ctx context.Context, status string, limit, offset int) (*dto.TitleListResponse, error) {
	list, err := uc.receivableRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TitleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *receivableToTitle(r))
	}
	return &dto.TitleListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListPayables lista títulos a pagar, com filtro opcional por status.
func (uc *SettlementUseCase) ListPayables(ctx context.Context, status string, limit, offset int) (*dto.TitleListResponse, error) {
	list, err := uc.payableRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TitleResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *payableToTitle(p))
	}
	return &dto.TitleListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func receivableToTitle(r *entity.Receivable) *dto.TitleResponse {
	return &dto.TitleResponse{
		ID:           r.ID,
		Counterparty: r.ClientID,
		ReferenceID:  r.SaleID,
		Amount:       r.Amount,
		IssueDate:    r.IssueDate,
		DueDate:      r.DueDate,
		Status:       r.Status,
		PaidAt:       r.PaidAt,
	}
}

func payableToTitle(p *entity.Payable) *dto.TitleResponse {
	return &dto.TitleResponse{
		ID:           p.ID,
		Counterparty: p.SupplierID,
		ReferenceID:  p.PurchaseID,
		Category:     p.Category,
		Amount:       p.Amount,
		IssueDate:    p.IssueDate,
		DueDate:      p.DueDate,
		Installment:  p.Installment,
		Status:       p.Status,
		PaidAt:       p.PaidAt,
	}
}
