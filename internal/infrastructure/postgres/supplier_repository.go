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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, tax_id, state_registration, email, phone,
	street, number, district, city, city_code, state, zip_code, active, created_at, updated_at`

// SupplierRepo persistência de fornecedores, mesmo layout do de clientes.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create insere um fornecedor.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.TaxID, s.StateRegistration, s.Email, s.Phone,
		s.Address.Street, s.Address.Number, s.Address.District, s.Address.City,
		s.Address.CityCode, s.Address.State, s.Address.ZipCode, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID busca um fornecedor por id.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.TaxID, &s.StateRegistration, &s.Email, &s.Phone,
		&s.Address.Street, &s.Address.Number, &s.Address.District, &s.Address.City,
		&s.Address.CityCode, &s.Address.State, &s.Address.ZipCode, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update atualiza o cadastro do fornecedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, tax_id = $3, state_registration = $4, email = $5, phone = $6,
			street = $7, number = $8, district = $9, city = $10, city_code = $11, state = $12, zip_code = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.TaxID, s.StateRegistration, s.Email, s.Phone,
		s.Address.Street, s.Address.Number, s.Address.District, s.Address.City,
		s.Address.CityCode, s.Address.State, s.Address.ZipCode, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista fornecedores com paginação.
func (r *SupplierRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE ($1 = false OR active) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID, &s.StateRegistration, &s.Email, &s.Phone,
			&s.Address.Street, &s.Address.Number, &s.Address.District, &s.Address.City,
			&s.Address.CityCode, &s.Address.State, &s.Address.ZipCode, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate remoção lógica.
func (r *SupplierRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
