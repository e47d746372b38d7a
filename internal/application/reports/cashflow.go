// Package reports contém os relatórios gerenciais: fluxo de caixa agregado
// por dia e o recibo de venda em PDF.
package reports

import (
	"context"
	"time"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// CashFlowUseCase agrega entradas e saídas bancárias por dia no período.
type CashFlowUseCase struct {
	cashFlowRepo repository.CashFlowRepository
}

// NewCashFlowUseCase constrói o caso de uso.
func NewCashFlowUseCase(cashFlowRepo repository.CashFlowRepository) *CashFlowUseCase {
	return &CashFlowUseCase{cashFlowRepo: cashFlowRepo}
}

// Flow devolve a série diária de fluxo de caixa entre from e to (inclusive).
func (uc *CashFlowUseCase) Flow(ctx context.Context, from, to time.Time) (*dto.CashFlowResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	days, err := uc.cashFlowRepo.Flow(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.CashFlowResponse{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Days: make([]dto.CashFlowDayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, dto.CashFlowDayResponse{
			Day:     d.Day.Format("2006-01-02"),
			Inflow:  d.Inflow.StringFixed(2),
			Outflow: d.Outflow.StringFixed(2),
			Net:     d.Net.StringFixed(2),
		})
	}
	return resp, nil
}
