package fiscal

import (
	"fmt"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
)

// Situação tributária do ICMS por regime do emitente.
// Simples Nacional usa CSOSN 102; regime normal usa CST 00.
const (
	icmsSimplesNacional = "102"
	icmsRegimeNormal    = "00"
	icmsOrigemNacional  = "0"
)

// Forma e meio de pagamento derivados da condição comercial da venda.
// À vista sai como pagamento em espécie; a prazo como boleto bancário.
const (
	formaPagamentoAVista  = 0
	formaPagamentoAPrazo  = 1
	meioPagamentoDinheiro = "01"
	meioPagamentoBoleto   = "15"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sanitize remove acentos e caracteres de controle; o provedor rejeita
// payloads com caracteres fora da faixa aceita pelo schema da NF-e.
func sanitize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func qty(d decimal.Decimal) string { return d.StringFixed(4) }

// buildPayload monta o corpo da NF-e de uma venda a partir do cadastro.
// Determinístico: a mesma venda gera sempre o mesmo payload.
func buildPayload(
	company *entity.Company,
	client *entity.Client,
	sale *entity.Sale,
	items []*entity.SaleItem,
	products map[string]*entity.Product,
	unitCodes map[string]string,
) (*InvoicePayload, error) {
	situacao := icmsRegimeNormal
	if company.TaxRegime == "1" {
		situacao = icmsSimplesNacional
	}

	payload := &InvoicePayload{
		NaturezaOperacao:  "Venda de producao do estabelecimento",
		DataEmissao:       sale.Date.Format("2006-01-02"),
		TipoDocumento:     1, // saída
		FinalidadeEmissao: 1, // normal
		ConsumidorFinal:   0,
		PresencaComprador: 1,

		CNPJEmitente:              company.CNPJ,
		NomeEmitente:              sanitize(company.CorporateName),
		NomeFantasiaEmitente:      sanitize(company.TradeName),
		InscricaoEstadualEmitente: company.StateRegistration,
		LogradouroEmitente:        sanitize(company.Address.Street),
		NumeroEmitente:            company.Address.Number,
		BairroEmitente:            sanitize(company.Address.District),
		MunicipioEmitente:         sanitize(company.Address.City),
		UFEmitente:                company.Address.State,
		CEPEmitente:               company.Address.ZipCode,
		RegimeTributario:          company.TaxRegime,

		NomeDestinatario:              sanitize(client.Name),
		InscricaoEstadualDestinatario: client.StateRegistration,
		LogradouroDestinatario:        sanitize(client.Address.Street),
		NumeroDestinatario:            client.Address.Number,
		BairroDestinatario:            sanitize(client.Address.District),
		MunicipioDestinatario:         sanitize(client.Address.City),
		UFDestinatario:                client.Address.State,
		CEPDestinatario:               client.Address.ZipCode,

		ModalidadeFrete: 9, // sem frete
	}

	// CNPJ tem 14 dígitos, CPF tem 11
	if len(client.TaxID) == 14 {
		payload.CNPJDestinatario = client.TaxID
	} else {
		payload.CPFDestinatario = client.TaxID
	}

	var total decimal.Decimal
	for i, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("produto %s da venda não está no catálogo", item.ProductID)
		}
		line := InvoiceItem{
			NumeroItem:          i + 1,
			CodigoProduto:       product.ID,
			Descricao:           sanitize(product.Name),
			CodigoNCM:           product.NCM,
			CFOP:                product.CFOP,
			UnidadeComercial:    unitCodes[product.UnitID],
			QuantidadeComercial: qty(item.Quantity),
			ValorUnitario:       money(item.UnitPrice),
			ValorBruto:          money(item.Subtotal),
			ICMSSituacao:        situacao,
			ICMSOrigem:          icmsOrigemNacional,
		}
		if situacao == icmsRegimeNormal && !product.TaxRate.IsZero() {
			line.ICMSAliquota = product.TaxRate.StringFixed(2)
		}
		payload.Items = append(payload.Items, line)
		total = total.Add(item.Subtotal)
	}

	payload.ValorProdutos = money(total)
	payload.ValorTotal = money(sale.FinalValue())

	pagamento := InvoicePayment{
		FormaPagamento: formaPagamentoAVista,
		MeioPagamento:  meioPagamentoDinheiro,
		ValorPagamento: money(sale.FinalValue()),
	}
	if sale.PaymentCondition == entity.PaymentTerm {
		pagamento.FormaPagamento = formaPagamentoAPrazo
		pagamento.MeioPagamento = meioPagamentoBoleto
		if sale.DueDate != nil {
			pagamento.DataVencimento = sale.DueDate.Format("2006-01-02")
		}
	}
	payload.FormasPagamento = []InvoicePayment{pagamento}
	return payload, nil
}
