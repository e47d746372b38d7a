package fiscal

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/application/apptest"
	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeGateway struct {
	emitResult   *InvoiceResult
	emitErr      error
	cancelResult *InvoiceResult
	lastRef      string
	lastPayload  *InvoicePayload
	lastJustif   string
}

func (g *fakeGateway) Emit(_ context.Context, ref string, payload *InvoicePayload) (*InvoiceResult, error) {
	g.lastRef = ref
	g.lastPayload = payload
	if g.emitErr != nil {
		return nil, g.emitErr
	}
	return g.emitResult, nil
}

func (g *fakeGateway) Consult(_ context.Context, ref string) (*InvoiceResult, error) {
	g.lastRef = ref
	return g.emitResult, nil
}

func (g *fakeGateway) Cancel(_ context.Context, ref, justification string) (*InvoiceResult, error) {
	g.lastRef = ref
	g.lastJustif = justification
	return g.cancelResult, nil
}

type companyRepoStub struct{ company *entity.Company }

func (r *companyRepoStub) Get() (*entity.Company, error)  { return r.company, nil }
func (r *companyRepoStub) Upsert(c *entity.Company) error { r.company = c; return nil }

type unitRepoStub struct{ units map[string]*entity.Unit }

func (r *unitRepoStub) Create(u *entity.Unit) error { r.units[u.ID] = u; return nil }
func (r *unitRepoStub) GetByID(id string) (*entity.Unit, error) {
	return r.units[id], nil
}
func (r *unitRepoStub) GetByCode(code string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.Code == code {
			return u, nil
		}
	}
	return nil, nil
}
func (r *unitRepoStub) List() ([]*entity.Unit, error) {
	out := make([]*entity.Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	return out, nil
}

func testCompany() *entity.Company {
	return &entity.Company{
		ID:                "emp-1",
		CorporateName:     "Frigorífico São João Ltda",
		TradeName:         "Frigo São João",
		CNPJ:              "12345678000195",
		StateRegistration: "123456789",
		TaxRegime:         "3",
		Address: entity.Address{
			Street: "Rodovia BR-153", Number: "KM 12", District: "Zona Rural",
			City: "Goiânia", CityCode: "5208707", State: "GO", ZipCode: "74000000",
		},
	}
}

func setup(t *testing.T) (*apptest.Store, *fakeGateway, *InvoiceUseCase) {
	t.Helper()
	store := apptest.NewStore()
	store.Clients["cli-1"] = &entity.Client{
		ID: "cli-1", Name: "Açougue Central", TaxID: "98765432000110",
		StateRegistration: "987654321",
		Address: entity.Address{
			Street: "Rua das Flores", Number: "100", District: "Centro",
			City: "Goiânia", State: "GO", ZipCode: "74001000",
		},
		Active: true,
	}
	store.Products["prod-picanha"] = &entity.Product{
		ID: "prod-picanha", Name: "Picanha Bovina", UnitID: "un-kg",
		NCM: "02013000", CFOP: "5101", TaxRate: dec("12"),
		Sellable: true, Active: true,
	}
	store.Sales["venda-1"] = &entity.Sale{
		ID: "venda-1", ClientID: "cli-1",
		Date:             time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		PaymentCondition: entity.PaymentImmediate,
		Total:            dec("450"),
		Status:           entity.SaleStatusPaid,
	}
	store.SaleItems = append(store.SaleItems, &entity.SaleItem{
		ID: "item-1", SaleID: "venda-1", ProductID: "prod-picanha",
		Quantity: dec("10"), UnitPrice: dec("45"), UnitCost: dec("32.50"), Subtotal: dec("450"),
	})

	gw := &fakeGateway{}
	units := &unitRepoStub{units: map[string]*entity.Unit{
		"un-kg": {ID: "un-kg", Code: "KG", Description: "Quilograma"},
	}}
	uc := NewInvoiceUseCase(
		gw,
		store.SaleRepo(),
		store.ClientRepo(),
		store.ProductRepo(),
		units,
		&companyRepoStub{company: testCompany()},
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)
	return store, gw, uc
}

func TestEmitForSale_Autorizada(t *testing.T) {
	store, gw, uc := setup(t)
	gw.emitResult = &InvoiceResult{
		Status:   entity.NFeStatusAuthorized,
		DanfeURL: "/arquivos/danfe-1.pdf",
		XMLURL:   "/arquivos/nota-1.xml",
	}

	resp, err := uc.EmitForSale(context.Background(), "venda-1")
	require.NoError(t, err)
	assert.Equal(t, "venda-venda-1", resp.Ref)
	assert.Equal(t, entity.NFeStatusAuthorized, resp.Status)
	assert.Equal(t, "/arquivos/danfe-1.pdf", resp.DanfeURL)

	// Sub-registro fiscal gravado na venda
	sale := store.Sales["venda-1"]
	require.NotNil(t, sale.Fiscal)
	assert.Equal(t, entity.NFeStatusAuthorized, sale.Fiscal.Status)

	// Payload determinístico montado do cadastro
	p := gw.lastPayload
	require.NotNil(t, p)
	assert.Equal(t, "12345678000195", p.CNPJEmitente)
	assert.Equal(t, "98765432000110", p.CNPJDestinatario)
	assert.Empty(t, p.CPFDestinatario)
	assert.Equal(t, "450.00", p.ValorTotal)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "KG", p.Items[0].UnidadeComercial)
	assert.Equal(t, "10.0000", p.Items[0].QuantidadeComercial)
	assert.Equal(t, "00", p.Items[0].ICMSSituacao)
	assert.Equal(t, "12.00", p.Items[0].ICMSAliquota)
	// Acentos removidos para o schema da NF-e
	assert.Equal(t, "Frigorifico Sao Joao Ltda", p.NomeEmitente)
	assert.Equal(t, "Goiania", p.MunicipioEmitente)
}

func TestEmitForSale_SimplesNacionalUsaCSOSN(t *testing.T) {
	_, gw, uc := setup(t)
	gw.emitResult = &InvoiceResult{Status: entity.NFeStatusProcessing}

	company := testCompany()
	company.TaxRegime = "1"
	uc.companyRepo = &companyRepoStub{company: company}

	_, err := uc.EmitForSale(context.Background(), "venda-1")
	require.NoError(t, err)
	require.Len(t, gw.lastPayload.Items, 1)
	assert.Equal(t, "102", gw.lastPayload.Items[0].ICMSSituacao)
	assert.Empty(t, gw.lastPayload.Items[0].ICMSAliquota)
}

func TestEmitForSale_JaAutorizadaNaoReemite(t *testing.T) {
	store, gw, uc := setup(t)
	store.Sales["venda-1"].Fiscal = &entity.FiscalRecord{
		Ref: "venda-venda-1", Status: entity.NFeStatusAuthorized,
	}

	_, err := uc.EmitForSale(context.Background(), "venda-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, gw.lastPayload)
}

func TestEmitForSale_ErroDoProvedorFicaRegistrado(t *testing.T) {
	store, gw, uc := setup(t)
	gw.emitResult = &InvoiceResult{
		Status:  entity.NFeStatusError,
		Message: "Rejeicao: Inscricao Estadual do destinatario invalida",
	}

	resp, err := uc.EmitForSale(context.Background(), "venda-1")
	require.NoError(t, err)
	assert.Equal(t, entity.NFeStatusError, resp.Status)

	// Mensagem da SEFAZ preservada verbatim; reemissão segue permitida
	sale := store.Sales["venda-1"]
	assert.Equal(t, "Rejeicao: Inscricao Estadual do destinatario invalida", sale.Fiscal.Message)

	gw.emitResult = &InvoiceResult{Status: entity.NFeStatusAuthorized}
	_, err = uc.EmitForSale(context.Background(), "venda-1")
	require.NoError(t, err)
	assert.Equal(t, entity.NFeStatusAuthorized, store.Sales["venda-1"].Fiscal.Status)
}

func TestCancelForSale_ExigeJustificativaMinima(t *testing.T) {
	store, _, uc := setup(t)
	store.Sales["venda-1"].Fiscal = &entity.FiscalRecord{
		Ref: "venda-venda-1", Status: entity.NFeStatusAuthorized,
	}

	_, err := uc.CancelForSale(context.Background(), "venda-1", dto.CancelInvoiceRequest{
		Justification: "erro de valor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelForSale_SoNotaAutorizada(t *testing.T) {
	store, _, uc := setup(t)
	store.Sales["venda-1"].Fiscal = &entity.FiscalRecord{
		Ref: "venda-venda-1", Status: entity.NFeStatusProcessing,
	}

	_, err := uc.CancelForSale(context.Background(), "venda-1", dto.CancelInvoiceRequest{
		Justification: "valor da nota emitido incorretamente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelForSale_Cancela(t *testing.T) {
	store, gw, uc := setup(t)
	store.Sales["venda-1"].Fiscal = &entity.FiscalRecord{
		Ref: "venda-venda-1", Status: entity.NFeStatusAuthorized,
	}
	gw.cancelResult = &InvoiceResult{Status: entity.NFeStatusCancelled}

	resp, err := uc.CancelForSale(context.Background(), "venda-1", dto.CancelInvoiceRequest{
		Justification: "valor da nota emitido incorretamente",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NFeStatusCancelled, resp.Status)
	assert.Equal(t, "venda-venda-1", gw.lastRef)
	assert.Equal(t, "valor da nota emitido incorretamente", gw.lastJustif)
	assert.Equal(t, entity.NFeStatusCancelled, store.Sales["venda-1"].Fiscal.Status)
}

func TestConsultForSale_SemNotaEmitida(t *testing.T) {
	_, _, uc := setup(t)

	_, err := uc.ConsultForSale(context.Background(), "venda-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmitForSale_FormaDePagamentoNoPayload(t *testing.T) {
	store, gw, uc := setup(t)
	gw.emitResult = &InvoiceResult{Status: entity.NFeStatusAuthorized}

	// À vista: pagamento em espécie, sem vencimento
	_, err := uc.EmitForSale(context.Background(), "venda-1")
	require.NoError(t, err)
	require.Len(t, gw.lastPayload.FormasPagamento, 1)
	pag := gw.lastPayload.FormasPagamento[0]
	assert.Equal(t, 0, pag.FormaPagamento)
	assert.Equal(t, "01", pag.MeioPagamento)
	assert.Equal(t, "450.00", pag.ValorPagamento)
	assert.Empty(t, pag.DataVencimento)

	// A prazo: boleto com o vencimento da venda
	due := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	sale := store.Sales["venda-1"]
	sale.Fiscal = nil
	sale.PaymentCondition = entity.PaymentTerm
	sale.DueDate = &due

	_, err = uc.EmitForSale(context.Background(), "venda-1")
	require.NoError(t, err)
	require.Len(t, gw.lastPayload.FormasPagamento, 1)
	pag = gw.lastPayload.FormasPagamento[0]
	assert.Equal(t, 1, pag.FormaPagamento)
	assert.Equal(t, "15", pag.MeioPagamento)
	assert.Equal(t, "2026-09-20", pag.DataVencimento)
}
