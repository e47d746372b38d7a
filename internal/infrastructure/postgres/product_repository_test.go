package postgres

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

func testProduct() *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:        uuid.NewString(),
		Name:      "Picanha Bovina",
		UnitID:    "unit-kg",
		Quantity:  decimal.NewFromInt(100),
		UnitCost:  decimal.RequireFromString("32.50"),
		SalePrice: decimal.RequireFromString("59.90"),
		NCM:       "02013000",
		CFOP:      "5101",
		TaxRate:   decimal.RequireFromString("12"),
		Sellable:  true,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func productRows(p *entity.Product) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "unit_id", "quantity", "unit_cost", "sale_price",
		"ncm", "cfop", "tax_rate", "sellable", "active", "created_at", "updated_at",
	}).AddRow(p.ID, p.Name, p.UnitID, p.Quantity, p.UnitCost, p.SalePrice,
		p.NCM, p.CFOP, p.TaxRate, p.Sellable, p.Active, p.CreatedAt, p.UpdatedAt)
}

func TestProductRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	p := testProduct()
	query := `INSERT INTO products`

	t.Run("sucesso", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(p.ID, p.Name, p.UnitID, p.Quantity, p.UnitCost, p.SalePrice,
				p.NCM, p.CFOP, p.TaxRate, p.Sellable, p.Active, p.CreatedAt, p.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Create(p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("violação de unicidade vira ErrDuplicate", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(p.ID, p.Name, p.UnitID, p.Quantity, p.UnitCost, p.SalePrice,
				p.NCM, p.CFOP, p.TaxRate, p.Sellable, p.Active, p.CreatedAt, p.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(p)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	p := testProduct()
	query := regexp.QuoteMeta(`SELECT ` + productColumns + ` FROM products WHERE id = $1`)

	t.Run("sucesso", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(p.ID).WillReturnRows(productRows(p))

		got, err := repo.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inexistente devolve nil sem erro", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(p.ID).WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByID(p.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro de banco é propagado", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectQuery(query).WithArgs(p.ID).WillReturnError(dbErr)

		got, err := repo.GetByID(p.ID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	p := testProduct()
	query := regexp.QuoteMeta(`SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`)

	mock.ExpectQuery(query).WithArgs(p.ID).WillReturnRows(productRows(p))

	got, err := repo.GetForUpdate(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_UpdateStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	id := uuid.NewString()
	qty := decimal.RequireFromString("85.500")
	query := regexp.QuoteMeta(`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`)

	t.Run("sucesso", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, qty).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateStock(id, qty))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("produto inexistente", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, qty).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateStock(id, qty), domain.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	p := testProduct()
	query := regexp.QuoteMeta(`SELECT ` + productColumns + ` FROM products WHERE ($1 = false OR active) ORDER BY name LIMIT $2 OFFSET $3`)

	mock.ExpectQuery(query).WithArgs(true, 20, 0).WillReturnRows(productRows(p))

	list, err := repo.List(true, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p, list[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
