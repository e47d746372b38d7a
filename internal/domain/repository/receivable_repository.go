package repository

import (
	"time"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

// ReceivableRepository porta de contas a receber.
// GetForUpdate bloqueia a linha: é o que impede baixa dupla concorrente.
type ReceivableRepository interface {
	Create(r *entity.Receivable) error
	GetByID(id string) (*entity.Receivable, error)
	GetForUpdate(id string) (*entity.Receivable, error)
	MarkPaid(id, bankAccountID string, paidAt time.Time) error
	List(status string, limit, offset int) ([]*entity.Receivable, error)
}

// PayableRepository porta de contas a pagar, espelho do contas a receber.
type PayableRepository interface {
	Create(p *entity.Payable) error
	GetByID(id string) (*entity.Payable, error)
	GetForUpdate(id string) (*entity.Payable, error)
	MarkPaid(id, bankAccountID string, paidAt time.Time) error
	List(status string, limit, offset int) ([]*entity.Payable, error)
}
