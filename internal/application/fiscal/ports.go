// Package fiscal contém o caso de uso de emissão de NF-e via gateway HTTP.
// A assinatura do XML e a comunicação com a SEFAZ são responsabilidade do
// provedor; aqui só montamos o payload e interpretamos os status devolvidos.
package fiscal

import "context"

// InvoiceItem uma linha do payload da NF-e.
type InvoiceItem struct {
	NumeroItem          int    `json:"numero_item"`
	CodigoProduto       string `json:"codigo_produto"`
	Descricao           string `json:"descricao"`
	CodigoNCM           string `json:"codigo_ncm"`
	CFOP                string `json:"cfop"`
	UnidadeComercial    string `json:"unidade_comercial"`
	QuantidadeComercial string `json:"quantidade_comercial"`
	ValorUnitario       string `json:"valor_unitario_comercial"`
	ValorBruto          string `json:"valor_bruto"`
	ICMSSituacao        string `json:"icms_situacao_tributaria"`
	ICMSOrigem          string `json:"icms_origem"`
	ICMSAliquota        string `json:"icms_aliquota,omitempty"`
}

// InvoicePayment o grupo de cobrança da NF-e (forma e meio de pagamento).
type InvoicePayment struct {
	FormaPagamento int    `json:"forma_pagamento"`
	MeioPagamento  string `json:"meio_pagamento"`
	ValorPagamento string `json:"valor_pagamento"`
	DataVencimento string `json:"data_vencimento,omitempty"`
}

// InvoicePayload é o corpo enviado ao provedor para autorizar a NF-e.
// Os nomes de campo seguem o contrato do gateway.
type InvoicePayload struct {
	NaturezaOperacao  string `json:"natureza_operacao"`
	DataEmissao       string `json:"data_emissao"`
	TipoDocumento     int    `json:"tipo_documento"`
	FinalidadeEmissao int    `json:"finalidade_emissao"`
	ConsumidorFinal   int    `json:"consumidor_final"`
	PresencaComprador int    `json:"presenca_comprador"`

	CNPJEmitente              string `json:"cnpj_emitente"`
	NomeEmitente              string `json:"nome_emitente"`
	NomeFantasiaEmitente      string `json:"nome_fantasia_emitente,omitempty"`
	InscricaoEstadualEmitente string `json:"inscricao_estadual_emitente"`
	LogradouroEmitente        string `json:"logradouro_emitente"`
	NumeroEmitente            string `json:"numero_emitente"`
	BairroEmitente            string `json:"bairro_emitente"`
	MunicipioEmitente         string `json:"municipio_emitente"`
	UFEmitente                string `json:"uf_emitente"`
	CEPEmitente               string `json:"cep_emitente"`
	RegimeTributario          string `json:"regime_tributario_emitente"`

	CNPJDestinatario              string `json:"cnpj_destinatario,omitempty"`
	CPFDestinatario               string `json:"cpf_destinatario,omitempty"`
	NomeDestinatario              string `json:"nome_destinatario"`
	InscricaoEstadualDestinatario string `json:"inscricao_estadual_destinatario,omitempty"`
	LogradouroDestinatario        string `json:"logradouro_destinatario"`
	NumeroDestinatario            string `json:"numero_destinatario"`
	BairroDestinatario            string `json:"bairro_destinatario"`
	MunicipioDestinatario         string `json:"municipio_destinatario"`
	UFDestinatario                string `json:"uf_destinatario"`
	CEPDestinatario               string `json:"cep_destinatario"`

	ValorProdutos string `json:"valor_produtos"`
	ValorTotal    string `json:"valor_total"`
	ModalidadeFrete int  `json:"modalidade_frete"`

	FormasPagamento []InvoicePayment `json:"formas_pagamento"`

	Items []InvoiceItem `json:"items"`
}

// InvoiceResult resume a situação da NF-e no provedor.
type InvoiceResult struct {
	Ref      string
	Status   string // autorizado | processando_autorizacao | cancelado | erro_autorizacao
	DanfeURL string
	XMLURL   string
	Message  string
	Errors   []string
}

// Gateway é a porta para o provedor de NF-e.
type Gateway interface {
	Emit(ctx context.Context, ref string, payload *InvoicePayload) (*InvoiceResult, error)
	Consult(ctx context.Context, ref string) (*InvoiceResult, error)
	Cancel(ctx context.Context, ref, justification string) (*InvoiceResult, error)
}
