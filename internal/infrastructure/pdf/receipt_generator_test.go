package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0.00":       "0,00",
		"450.00":     "450,00",
		"1234.56":    "1.234,56",
		"1000000.00": "1.000.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), "entrada %s", in)
	}
}

func TestGenerate(t *testing.T) {
	adjusted := decimal.RequireFromString("430.00")
	sale := &entity.Sale{
		ID:               "a1b2c3d4-0000-0000-0000-000000000000",
		ClientID:         "client-1",
		Date:             time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		PaymentCondition: entity.PaymentImmediate,
		Total:            decimal.RequireFromString("450.00"),
		AdjustedTotal:    &adjusted,
		Status:           entity.SaleStatusPaid,
		Fiscal: &entity.FiscalRecord{
			Ref:     "venda-a1b2c3d4",
			Status:  entity.NFeStatusAuthorized,
			Message: "Autorizado o uso da NF-e",
		},
	}
	items := []*entity.SaleItem{
		{
			ID: "item-1", SaleID: sale.ID, ProductID: "prod-1",
			Quantity:  decimal.NewFromInt(10),
			UnitPrice: decimal.RequireFromString("45.00"),
			UnitCost:  decimal.RequireFromString("30.00"),
			Subtotal:  decimal.RequireFromString("450.00"),
		},
	}
	products := map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Picanha Bovina", UnitID: "unit-kg"},
	}
	company := &entity.Company{
		CorporateName: "Frigorífico São João Ltda",
		CNPJ:          "12.345.678/0001-90",
		Address: entity.Address{
			Street: "Rodovia BR-153", Number: "km 12", District: "Zona Rural",
			City: "Goiânia", State: "GO",
		},
	}
	client := &entity.Client{Name: "Açougue Central", TaxID: "98.765.432/0001-10"}

	data, err := NewMarotoReceiptGenerator().Generate(company, client, sale, items, products)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
