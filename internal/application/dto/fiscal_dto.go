package dto

// EmitInvoiceRequest pedido de emissão de NF-e para uma venda.
type EmitInvoiceRequest struct {
	SaleID string `json:"sale_id"`
}

// CancelInvoiceRequest cancelamento: a SEFAZ exige justificativa de no mínimo 15 caracteres.
type CancelInvoiceRequest struct {
	Justification string `json:"justification"`
}

// CashFlowDayResponse fluxo de caixa agregado de um dia.
type CashFlowDayResponse struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Inflow  string `json:"inflow"`
	Outflow string `json:"outflow"`
	Net     string `json:"net"`
}

// CashFlowResponse série do período consultado.
type CashFlowResponse struct {
	From string                `json:"from"`
	To   string                `json:"to"`
	Days []CashFlowDayResponse `json:"days"`
}
