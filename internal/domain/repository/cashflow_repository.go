package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyFlow é o agregado de fluxo de caixa de um dia.
type DailyFlow struct {
	Day     time.Time
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
}

// CashFlowRepository consultas de leitura sobre os lançamentos bancários.
type CashFlowRepository interface {
	Flow(ctx context.Context, from, to time.Time) ([]DailyFlow, error)
}
