package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

const bankAccountColumns = `id, name, bank, balance, initial_balance, active, created_at, updated_at`
const bankEntryColumns = `id, bank_account_id, type, amount, previous_balance, new_balance, description, reference_id, date, created_at`

// BankAccountRepo contas bancárias e seus lançamentos.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository constrói o adaptador.
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create insere uma conta.
func (r *BankAccountRepo) Create(a *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Bank, a.Balance, a.InitialBalance, a.Active, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID busca uma conta por id.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	return r.get(`SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1`, id)
}

// GetForUpdate bloqueia a linha da conta; serializa mudanças de saldo.
func (r *BankAccountRepo) GetForUpdate(id string) (*entity.BankAccount, error) {
	return r.get(`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1 FOR UPDATE`, id)
}

func (r *BankAccountRepo) get(query, id string) (*entity.BankAccount, error) {
	var a entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Bank, &a.Balance, &a.InitialBalance, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &a, nil
}

// Update atualiza os dados cadastrais da conta (não o saldo).
func (r *BankAccountRepo) Update(a *entity.BankAccount) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bank_accounts SET name = $2, bank = $3, updated_at = $4 WHERE id = $1`,
		a.ID, a.Name, a.Bank, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	return nil
}

// UpdateBalance grava o saldo novo; sempre acompanhado de um CreateEntry na mesma transação.
func (r *BankAccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE bank_accounts SET balance = $2, updated_at = now() WHERE id = $1`,
		id, balance,
	)
	if err != nil {
		return fmt.Errorf("update bank balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}

// CreateEntry insere um lançamento pareado com a mudança de saldo.
func (r *BankAccountRepo) CreateEntry(e *entity.BankEntry) error {
	query := `
		INSERT INTO bank_entries (` + bankEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.BankAccountID, e.Type, e.Amount, e.PreviousBalance, e.NewBalance,
		e.Description, e.ReferenceID, e.Date, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank entry: %w", err)
	}
	return nil
}

// ListEntries extrato da conta, mais recente primeiro.
func (r *BankAccountRepo) ListEntries(accountID string, limit, offset int) ([]*entity.BankEntry, error) {
	query := `SELECT ` + bankEntryColumns + ` FROM bank_entries WHERE bank_account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bank entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankEntry
	for rows.Next() {
		var e entity.BankEntry
		if err := rows.Scan(&e.ID, &e.BankAccountID, &e.Type, &e.Amount, &e.PreviousBalance,
			&e.NewBalance, &e.Description, &e.ReferenceID, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// List lista contas.
func (r *BankAccountRepo) List(onlyActive bool) ([]*entity.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE ($1 = false OR active) ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Bank, &a.Balance, &a.InitialBalance,
			&a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Deactivate remoção lógica da conta.
func (r *BankAccountRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE bank_accounts SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate bank account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}
