package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

// CashFlowRepo consultas de leitura sobre bank_entries. Relatório puro,
// roda fora de transação e recebe contexto do handler.
type CashFlowRepo struct {
	q Querier
}

// NewCashFlowRepository constrói o adaptador.
func NewCashFlowRepository(q Querier) *CashFlowRepo {
	return &CashFlowRepo{q: q}
}

// Flow agrega créditos e débitos por dia no período (inclusive).
func (r *CashFlowRepo) Flow(ctx context.Context, from, to time.Time) ([]repository.DailyFlow, error) {
	query := `
		SELECT date_trunc('day', date)::date AS day,
			COALESCE(SUM(amount) FILTER (WHERE type = $3), 0) AS inflow,
			COALESCE(SUM(amount) FILTER (WHERE type = $4), 0) AS outflow
		FROM bank_entries
		WHERE date >= $1 AND date < $2 + interval '1 day'
		GROUP BY 1
		ORDER BY 1`
	rows, err := r.q.Query(ctx, query, from, to, entity.BankEntryCredit, entity.BankEntryDebit)
	if err != nil {
		return nil, fmt.Errorf("cash flow query: %w", err)
	}
	defer rows.Close()
	var out []repository.DailyFlow
	for rows.Next() {
		var d repository.DailyFlow
		if err := rows.Scan(&d.Day, &d.Inflow, &d.Outflow); err != nil {
			return nil, fmt.Errorf("scan cash flow: %w", err)
		}
		d.Net = d.Inflow.Sub(d.Outflow)
		out = append(out, d)
	}
	return out, rows.Err()
}
