package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, corporate_name, trade_name, cnpj, state_registration, tax_regime,
	street, number, district, city, city_code, state, zip_code, phone, email, created_at, updated_at`

// CompanyRepo dados da empresa emissora. Na prática a tabela tem uma linha só.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Get devolve a empresa cadastrada, nil se ainda não houver.
func (r *CompanyRepo) Get() (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.CorporateName, &c.TradeName, &c.CNPJ, &c.StateRegistration, &c.TaxRegime,
		&c.Address.Street, &c.Address.Number, &c.Address.District, &c.Address.City,
		&c.Address.CityCode, &c.Address.State, &c.Address.ZipCode, &c.Phone, &c.Email,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Upsert cria ou substitui o registro da empresa.
func (r *CompanyRepo) Upsert(c *entity.Company) error {
	query := `
		INSERT INTO company (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			corporate_name = EXCLUDED.corporate_name,
			trade_name = EXCLUDED.trade_name,
			cnpj = EXCLUDED.cnpj,
			state_registration = EXCLUDED.state_registration,
			tax_regime = EXCLUDED.tax_regime,
			street = EXCLUDED.street,
			number = EXCLUDED.number,
			district = EXCLUDED.district,
			city = EXCLUDED.city,
			city_code = EXCLUDED.city_code,
			state = EXCLUDED.state,
			zip_code = EXCLUDED.zip_code,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CorporateName, c.TradeName, c.CNPJ, c.StateRegistration, c.TaxRegime,
		c.Address.Street, c.Address.Number, c.Address.District, c.Address.City,
		c.Address.CityCode, c.Address.State, c.Address.ZipCode, c.Phone, c.Email,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company: %w", err)
	}
	return nil
}
