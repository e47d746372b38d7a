package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ repository.SlaughterRepository = (*SlaughterRepo)(nil)

const slaughterColumns = `id, supplier_id, lot, animal_count, live_weight, carcass_weight, date, created_at, created_by`

// SlaughterRepo persistência de lotes de abate.
type SlaughterRepo struct {
	q Querier
}

// NewSlaughterRepository constrói o adaptador.
func NewSlaughterRepository(q Querier) *SlaughterRepo {
	return &SlaughterRepo{q: q}
}

// Create insere a cabeça do lote.
func (r *SlaughterRepo) Create(s *entity.Slaughter) error {
	query := `
		INSERT INTO slaughters (` + slaughterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SupplierID, s.Lot, s.AnimalCount, s.LiveWeight, s.CarcassWeight,
		s.Date, s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert slaughter: %w", err)
	}
	return nil
}

// CreateItem insere um produto resultante do lote.
func (r *SlaughterRepo) CreateItem(item *entity.SlaughterItem) error {
	query := `
		INSERT INTO slaughter_items (id, slaughter_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SlaughterID, item.ProductID, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert slaughter item: %w", err)
	}
	return nil
}

// GetByID busca um lote por id.
func (r *SlaughterRepo) GetByID(id string) (*entity.Slaughter, error) {
	query := `SELECT ` + slaughterColumns + ` FROM slaughters WHERE id = $1`
	var s entity.Slaughter
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SupplierID, &s.Lot, &s.AnimalCount, &s.LiveWeight, &s.CarcassWeight,
		&s.Date, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slaughter: %w", err)
	}
	return &s, nil
}

// GetItems devolve os produtos resultantes de um lote.
func (r *SlaughterRepo) GetItems(slaughterID string) ([]*entity.SlaughterItem, error) {
	query := `
		SELECT id, slaughter_id, product_id, quantity
		FROM slaughter_items WHERE slaughter_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, slaughterID)
	if err != nil {
		return nil, fmt.Errorf("list slaughter items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SlaughterItem
	for rows.Next() {
		var it entity.SlaughterItem
		if err := rows.Scan(&it.ID, &it.SlaughterID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan slaughter item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista lotes, mais recente primeiro.
func (r *SlaughterRepo) List(limit, offset int) ([]*entity.Slaughter, error) {
	query := `SELECT ` + slaughterColumns + ` FROM slaughters ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list slaughters: %w", err)
	}
	defer rows.Close()
	var list []*entity.Slaughter
	for rows.Next() {
		var s entity.Slaughter
		if err := rows.Scan(&s.ID, &s.SupplierID, &s.Lot, &s.AnimalCount, &s.LiveWeight,
			&s.CarcassWeight, &s.Date, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan slaughter: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
