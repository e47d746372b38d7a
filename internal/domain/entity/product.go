package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo (cortes, miúdos, subprodutos, insumos).
// Quantity é o estoque corrente e só muda dentro do núcleo transacional
// (venda decrementa, compra/abate incrementa, movimento manual ajusta).
// UnitCost é custo médio ponderado recalculado nas entradas.
type Product struct {
	ID        string
	Name      string
	UnitID    string          // referência à unidade de medida (KG, UN, CX...)
	Quantity  decimal.Decimal // nunca negativa como resultado de venda confirmada
	UnitCost  decimal.Decimal
	SalePrice decimal.Decimal // preço de venda (produtos vendáveis)
	NCM       string          // classificação fiscal (vendáveis)
	CFOP      string
	TaxRate   decimal.Decimal // alíquota ICMS em %
	Sellable  bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
