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

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, tax_id, state_registration, email, phone,
	street, number, district, city, city_code, state, zip_code, active, created_at, updated_at`

// ClientRepo persistência de clientes. O endereço é achatado em colunas.
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create insere um cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.TaxID, c.StateRegistration, c.Email, c.Phone,
		c.Address.Street, c.Address.Number, c.Address.District, c.Address.City,
		c.Address.CityCode, c.Address.State, c.Address.ZipCode, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID busca um cliente por id.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.StateRegistration, &c.Email, &c.Phone,
		&c.Address.Street, &c.Address.Number, &c.Address.District, &c.Address.City,
		&c.Address.CityCode, &c.Address.State, &c.Address.ZipCode, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update atualiza o cadastro do cliente.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, tax_id = $3, state_registration = $4, email = $5, phone = $6,
			street = $7, number = $8, district = $9, city = $10, city_code = $11, state = $12, zip_code = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.TaxID, c.StateRegistration, c.Email, c.Phone,
		c.Address.Street, c.Address.Number, c.Address.District, c.Address.City,
		c.Address.CityCode, c.Address.State, c.Address.ZipCode, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// List lista clientes com paginação.
func (r *ClientRepo) List(onlyActive bool, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE ($1 = false OR active) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.StateRegistration, &c.Email, &c.Phone,
			&c.Address.Street, &c.Address.Number, &c.Address.District, &c.Address.City,
			&c.Address.CityCode, &c.Address.State, &c.Address.ZipCode, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Deactivate remoção lógica.
func (r *ClientRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE clients SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
