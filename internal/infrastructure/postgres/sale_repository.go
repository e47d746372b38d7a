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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// O sub-registro fiscal vive em colunas fiscal_* da própria tabela sales;
// fiscal_ref vazio significa NF-e ainda não emitida.
const saleColumns = `id, client_id, date, payment_condition, due_date, total, adjusted_total, status,
	fiscal_ref, fiscal_status, fiscal_danfe_url, fiscal_xml_url, fiscal_message, created_at, created_by`

// SaleRepo persistência de vendas e suas linhas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create insere a cabeça da venda.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, date, payment_condition, due_date, total, adjusted_total, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ClientID, s.Date, s.PaymentCondition, s.DueDate, s.Total, s.AdjustedTotal,
		s.Status, s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem insere uma linha da venda com o custo congelado.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, unit_cost, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.UnitCost, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID busca a venda com o sub-registro fiscal.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	var fiscalRef, fiscalStatus, fiscalDanfe, fiscalXML, fiscalMessage *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClientID, &s.Date, &s.PaymentCondition, &s.DueDate, &s.Total, &s.AdjustedTotal, &s.Status,
		&fiscalRef, &fiscalStatus, &fiscalDanfe, &fiscalXML, &fiscalMessage, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.Fiscal = buildFiscal(fiscalRef, fiscalStatus, fiscalDanfe, fiscalXML, fiscalMessage)
	return &s, nil
}

func buildFiscal(ref, status, danfe, xml, message *string) *entity.FiscalRecord {
	if ref == nil || *ref == "" {
		return nil
	}
	f := &entity.FiscalRecord{Ref: *ref}
	if status != nil {
		f.Status = *status
	}
	if danfe != nil {
		f.DanfeURL = *danfe
	}
	if xml != nil {
		f.XMLURL = *xml
	}
	if message != nil {
		f.Message = *message
	}
	return f
}

// GetItems devolve as linhas de uma venda.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, unit_cost, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.UnitCost, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateFiscal grava o sub-registro fiscal devolvido pelo provedor.
func (r *SaleRepo) UpdateFiscal(saleID string, f *entity.FiscalRecord) error {
	query := `
		UPDATE sales SET fiscal_ref = $2, fiscal_status = $3, fiscal_danfe_url = $4, fiscal_xml_url = $5, fiscal_message = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		saleID, f.Ref, f.Status, f.DanfeURL, f.XMLURL, f.Message,
	)
	if err != nil {
		return fmt.Errorf("update sale fiscal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus muda o status de pagamento da venda.
func (r *SaleRepo) UpdateStatus(saleID, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1`, saleID, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista vendas paginadas, mais recente primeiro.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var fiscalRef, fiscalStatus, fiscalDanfe, fiscalXML, fiscalMessage *string
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.Date, &s.PaymentCondition, &s.DueDate, &s.Total, &s.AdjustedTotal, &s.Status,
			&fiscalRef, &fiscalStatus, &fiscalDanfe, &fiscalXML, &fiscalMessage, &s.CreatedAt, &s.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.Fiscal = buildFiscal(fiscalRef, fiscalStatus, fiscalDanfe, fiscalXML, fiscalMessage)
		list = append(list, &s)
	}
	return list, rows.Err()
}
