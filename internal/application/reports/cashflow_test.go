package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

type cashFlowRepoStub struct {
	days []repository.DailyFlow
	from time.Time
	to   time.Time
}

func (r *cashFlowRepoStub) Flow(_ context.Context, from, to time.Time) ([]repository.DailyFlow, error) {
	r.from, r.to = from, to
	return r.days, nil
}

func TestCashFlow_SerieDiaria(t *testing.T) {
	dec := decimal.RequireFromString
	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	stub := &cashFlowRepoStub{days: []repository.DailyFlow{
		{Day: day1, Inflow: dec("500"), Outflow: dec("120"), Net: dec("380")},
		{Day: day2, Inflow: dec("0"), Outflow: dec("80.50"), Net: dec("-80.50")},
	}}
	uc := NewCashFlowUseCase(stub)

	resp, err := uc.Flow(context.Background(), day1, day2)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", resp.From)
	assert.Equal(t, "2026-08-02", resp.To)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "500.00", resp.Days[0].Inflow)
	assert.Equal(t, "380.00", resp.Days[0].Net)
	assert.Equal(t, "-80.50", resp.Days[1].Net)
}

func TestCashFlow_PeriodoInvertido(t *testing.T) {
	uc := NewCashFlowUseCase(&cashFlowRepoStub{})
	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Flow(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
