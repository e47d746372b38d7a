package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo unidades de medida do catálogo.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository constrói o adaptador.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create insere uma unidade. O código é único.
func (r *UnitRepo) Create(u *entity.Unit) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO units (id, code, description, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Code, u.Description, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID busca uma unidade por id.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	return r.get(`SELECT id, code, description, created_at FROM units WHERE id = $1`, id)
}

// GetByCode busca uma unidade pela sigla (KG, UN...).
func (r *UnitRepo) GetByCode(code string) (*entity.Unit, error) {
	return r.get(`SELECT id, code, description, created_at FROM units WHERE code = $1`, code)
}

func (r *UnitRepo) get(query, arg string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&u.ID, &u.Code, &u.Description, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// List lista todas as unidades.
func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, description, created_at FROM units ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Code, &u.Description, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
