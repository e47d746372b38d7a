package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// BankAccountUseCase gestão de contas bancárias e consulta de extrato.
// O saldo nunca é editado direto: só muda pelas baixas e pelo núcleo de venda.
type BankAccountUseCase struct {
	bankRepo repository.BankAccountRepository
}

// NewBankAccountUseCase constrói o caso de uso.
func NewBankAccountUseCase(bankRepo repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{bankRepo: bankRepo}
}

// Create cadastra uma conta com saldo inicial.
func (uc *BankAccountUseCase) Create(ctx context.Context, in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.BankAccount{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Bank:           in.Bank,
		Balance:        in.InitialBalance,
		InitialBalance: in.InitialBalance,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.bankRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Get devolve uma conta pelo id.
func (uc *BankAccountUseCase) Get(ctx context.Context, id string) (*dto.BankAccountResponse, error) {
	account, err := uc.bankRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrBankAccountNotFound
	}
	return toAccountResponse(account), nil
}

// List lista as contas ativas.
func (uc *BankAccountUseCase) List(ctx context.Context) ([]dto.BankAccountResponse, error) {
	accounts, err := uc.bankRepo.List(true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BankAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// Statement devolve o extrato (lançamentos) de uma conta.
func (uc *BankAccountUseCase) Statement(ctx context.Context, accountID string, limit, offset int) ([]dto.BankEntryResponse, error) {
	account, err := uc.bankRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrBankAccountNotFound
	}
	entries, err := uc.bankRepo.ListEntries(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BankEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.BankEntryResponse{
			ID:              e.ID,
			Type:            e.Type,
			Amount:          e.Amount,
			PreviousBalance: e.PreviousBalance,
			NewBalance:      e.NewBalance,
			Description:     e.Description,
			ReferenceID:     e.ReferenceID,
			Date:            e.Date,
		})
	}
	return out, nil
}

// Deactivate desativa uma conta (remoção lógica). O histórico permanece.
func (uc *BankAccountUseCase) Deactivate(ctx context.Context, id string) error {
	account, err := uc.bankRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrBankAccountNotFound
	}
	return uc.bankRepo.Deactivate(id)
}

func toAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Bank:           a.Bank,
		Balance:        a.Balance,
		InitialBalance: a.InitialBalance,
		Active:         a.Active,
	}
}
