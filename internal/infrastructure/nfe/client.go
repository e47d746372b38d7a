// Package nfe implementa o gateway de NF-e sobre a API HTTP do provedor
// (contrato estilo Focus NFe). Autenticação Basic com o token como usuário
// e senha vazia.
package nfe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/frigoerp/frigorifico-api/internal/application/fiscal"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/pkg/config"
	"github.com/frigoerp/frigorifico-api/pkg/logger"
)

var _ fiscal.Gateway = (*Client)(nil)

const (
	providerName   = "nfe-gateway"
	defaultTimeout = 30 * time.Second
)

// Client fala com o provedor de NF-e.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logger.Logger
}

// NewClient constrói o cliente a partir da configuração.
func NewClient(cfg config.NFEConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL(), "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// invoiceResponse corpo devolvido pelo provedor nas três operações.
type invoiceResponse struct {
	Ref           string `json:"ref"`
	Status        string `json:"status"`
	StatusSefaz   string `json:"status_sefaz"`
	MensagemSefaz string `json:"mensagem_sefaz"`
	CaminhoDanfe  string `json:"caminho_danfe"`
	CaminhoXML    string `json:"caminho_xml_nota_fiscal"`
	Codigo        string `json:"codigo"`
	Mensagem      string `json:"mensagem"`
	Erros         []struct {
		Codigo   string `json:"codigo"`
		Mensagem string `json:"mensagem"`
		Campo    string `json:"campo"`
	} `json:"erros"`
}

// Emit envia a nota para autorização. O provedor processa de forma assíncrona;
// a resposta normal é processando_autorizacao e o status final vem via Consult.
func (c *Client) Emit(ctx context.Context, ref string, payload *fiscal.InvoicePayload) (*fiscal.InvoiceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serializar payload da NF-e: %w", err)
	}
	endpoint := c.baseURL + "/v2/nfe?ref=" + url.QueryEscape(ref)
	c.log.Info().Str("ref", ref).Msg("enviando NF-e ao provedor")
	return c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body), ref)
}

// Consult consulta a situação corrente da nota.
func (c *Client) Consult(ctx context.Context, ref string) (*fiscal.InvoiceResult, error) {
	endpoint := c.baseURL + "/v2/nfe/" + url.PathEscape(ref)
	return c.do(ctx, http.MethodGet, endpoint, nil, ref)
}

// Cancel solicita o cancelamento de uma nota autorizada.
func (c *Client) Cancel(ctx context.Context, ref, justification string) (*fiscal.InvoiceResult, error) {
	body, err := json.Marshal(map[string]string{"justificativa": justification})
	if err != nil {
		return nil, fmt.Errorf("serializar justificativa: %w", err)
	}
	endpoint := c.baseURL + "/v2/nfe/" + url.PathEscape(ref)
	c.log.Info().Str("ref", ref).Msg("solicitando cancelamento de NF-e")
	return c.do(ctx, http.MethodDelete, endpoint, bytes.NewReader(body), ref)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, ref string) (*fiscal.InvoiceResult, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("montar requisição NF-e: %w", err)
	}
	req.SetBasicAuth(c.token, "")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chamar provedor de NF-e: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("ler resposta do provedor: %w", err)
	}

	var wire invoiceResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("decodificar resposta do provedor (HTTP %d): %w", resp.StatusCode, err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.providerError(resp.StatusCode, &wire)
	}

	result := &fiscal.InvoiceResult{
		Ref:      wire.Ref,
		Status:   wire.Status,
		DanfeURL: wire.CaminhoDanfe,
		XMLURL:   wire.CaminhoXML,
		Message:  wire.MensagemSefaz,
	}
	if result.Ref == "" {
		result.Ref = ref
	}
	for _, e := range wire.Erros {
		result.Errors = append(result.Errors, e.Mensagem)
	}
	return result, nil
}

// providerError traduz uma rejeição HTTP do provedor preservando as mensagens.
func (c *Client) providerError(status int, wire *invoiceResponse) error {
	msg := wire.Mensagem
	if msg == "" {
		msg = wire.MensagemSefaz
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	details := make([]string, 0, len(wire.Erros))
	for _, e := range wire.Erros {
		details = append(details, e.Mensagem)
	}
	c.log.Warn().Int("status", status).Str("mensagem", msg).Msg("provedor de NF-e rejeitou a requisição")
	return &domain.ExternalServiceError{Provider: providerName, Message: msg, Details: details}
}
