package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)
var _ repository.PayableRepository = (*PayableRepo)(nil)

const receivableColumns = `id, client_id, sale_id, amount, issue_date, due_date, status, paid_at, bank_account_id, created_at`

// ReceivableRepo persistência de contas a receber.
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository constrói o adaptador.
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

// Create insere um título a receber.
func (r *ReceivableRepo) Create(rec *entity.Receivable) error {
	query := `
		INSERT INTO receivables (` + receivableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ClientID, rec.SaleID, rec.Amount, rec.IssueDate, rec.DueDate,
		rec.Status, rec.PaidAt, rec.BankAccountID, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

// GetByID busca um título por id.
func (r *ReceivableRepo) GetByID(id string) (*entity.Receivable, error) {
	return r.get(`SELECT ` + receivableColumns + ` FROM receivables WHERE id = $1`, id)
}

// GetForUpdate bloqueia a linha do título; impede baixa dupla concorrente.
func (r *ReceivableRepo) GetForUpdate(id string) (*entity.Receivable, error) {
	return r.get(`SELECT `+receivableColumns+` FROM receivables WHERE id = $1 FOR UPDATE`, id)
}

func (r *ReceivableRepo) get(query, id string) (*entity.Receivable, error) {
	var rec entity.Receivable
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ClientID, &rec.SaleID, &rec.Amount, &rec.IssueDate, &rec.DueDate,
		&rec.Status, &rec.PaidAt, &rec.BankAccountID, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	return &rec, nil
}

// MarkPaid grava a baixa do título.
func (r *ReceivableRepo) MarkPaid(id, bankAccountID string, paidAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE receivables SET status = $2, paid_at = $3, bank_account_id = $4 WHERE id = $1`,
		id, entity.TitleStatusPaid, paidAt, bankAccountID,
	)
	if err != nil {
		return fmt.Errorf("mark receivable paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista títulos, filtrando por status quando informado, vencimento mais próximo primeiro.
func (r *ReceivableRepo) List(status string, limit, offset int) ([]*entity.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables WHERE ($1 = '' OR status = $1) ORDER BY due_date LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receivable
	for rows.Next() {
		var rec entity.Receivable
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.SaleID, &rec.Amount, &rec.IssueDate,
			&rec.DueDate, &rec.Status, &rec.PaidAt, &rec.BankAccountID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

const payableColumns = `id, supplier_id, purchase_id, category, amount, issue_date, due_date, installment, status, paid_at, bank_account_id, created_at`

// PayableRepo persistência de contas a pagar, espelho do contas a receber.
type PayableRepo struct {
	q Querier
}

// NewPayableRepository constrói o adaptador.
func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

// Create insere um título a pagar.
func (r *PayableRepo) Create(p *entity.Payable) error {
	query := `
		INSERT INTO payables (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SupplierID, p.PurchaseID, p.Category, p.Amount, p.IssueDate, p.DueDate,
		p.Installment, p.Status, p.PaidAt, p.BankAccountID, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payable: %w", err)
	}
	return nil
}

// GetByID busca um título por id.
func (r *PayableRepo) GetByID(id string) (*entity.Payable, error) {
	return r.get(`SELECT ` + payableColumns + ` FROM payables WHERE id = $1`, id)
}

// GetForUpdate bloqueia a linha do título.
func (r *PayableRepo) GetForUpdate(id string) (*entity.Payable, error) {
	return r.get(`SELECT `+payableColumns+` FROM payables WHERE id = $1 FOR UPDATE`, id)
}

func (r *PayableRepo) get(query, id string) (*entity.Payable, error) {
	var p entity.Payable
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.PurchaseID, &p.Category, &p.Amount, &p.IssueDate, &p.DueDate,
		&p.Installment, &p.Status, &p.PaidAt, &p.BankAccountID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payable: %w", err)
	}
	return &p, nil
}

// MarkPaid grava a baixa do título.
func (r *PayableRepo) MarkPaid(id, bankAccountID string, paidAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payables SET status = $2, paid_at = $3, bank_account_id = $4 WHERE id = $1`,
		id, entity.TitleStatusPaid, paidAt, bankAccountID,
	)
	if err != nil {
		return fmt.Errorf("mark payable paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista títulos a pagar.
func (r *PayableRepo) List(status string, limit, offset int) ([]*entity.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables WHERE ($1 = '' OR status = $1) ORDER BY due_date LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payable
	for rows.Next() {
		var p entity.Payable
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.PurchaseID, &p.Category, &p.Amount,
			&p.IssueDate, &p.DueDate, &p.Installment, &p.Status, &p.PaidAt, &p.BankAccountID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
