package nfe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/application/fiscal"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/pkg/config"
	"github.com/frigoerp/frigorifico-api/pkg/logger"
)

func newClient(baseURL string) *Client {
	cfg := config.NFEConfig{Token: "token-teste", Environment: "homologacao", BaseURLHom: baseURL}
	return NewClient(cfg, logger.New(logger.Config{Env: "production", Level: "error"}))
}

func TestClient_Emit(t *testing.T) {
	var gotPayload fiscal.InvoicePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/nfe", r.URL.Path)
		assert.Equal(t, "venda-123", r.URL.Query().Get("ref"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "token-teste", user)
		assert.Empty(t, pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ref":"venda-123","status":"processando_autorizacao"}`))
	}))
	defer srv.Close()

	payload := &fiscal.InvoicePayload{
		NaturezaOperacao: "Venda de mercadoria",
		CNPJEmitente:     "12345678000190",
		ValorTotal:       "450.00",
	}
	result, err := newClient(srv.URL).Emit(context.Background(), "venda-123", payload)
	require.NoError(t, err)

	assert.Equal(t, "venda-123", result.Ref)
	assert.Equal(t, "processando_autorizacao", result.Status)
	assert.Equal(t, "Venda de mercadoria", gotPayload.NaturezaOperacao)
	assert.Equal(t, "12345678000190", gotPayload.CNPJEmitente)
}

func TestClient_Consult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/nfe/venda-123", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"ref": "venda-123",
			"status": "autorizado",
			"caminho_danfe": "/notas/danfe-123.pdf",
			"caminho_xml_nota_fiscal": "/notas/nota-123.xml",
			"mensagem_sefaz": "Autorizado o uso da NF-e"
		}`))
	}))
	defer srv.Close()

	result, err := newClient(srv.URL).Consult(context.Background(), "venda-123")
	require.NoError(t, err)

	assert.Equal(t, "autorizado", result.Status)
	assert.Equal(t, "/notas/danfe-123.pdf", result.DanfeURL)
	assert.Equal(t, "/notas/nota-123.xml", result.XMLURL)
	assert.Equal(t, "Autorizado o uso da NF-e", result.Message)
}

func TestClient_Cancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v2/nfe/venda-123", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cancelamento por erro de digitação no pedido", body["justificativa"])

		_, _ = w.Write([]byte(`{"ref":"venda-123","status":"cancelado"}`))
	}))
	defer srv.Close()

	result, err := newClient(srv.URL).Cancel(context.Background(), "venda-123", "Cancelamento por erro de digitação no pedido")
	require.NoError(t, err)
	assert.Equal(t, "cancelado", result.Status)
}

func TestClient_RejeicaoDoProvedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{
			"codigo": "erro_validacao",
			"mensagem": "Campos obrigatórios ausentes",
			"erros": [
				{"campo": "codigo_ncm", "mensagem": "NCM inválido"},
				{"campo": "cfop", "mensagem": "CFOP obrigatório"}
			]
		}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Emit(context.Background(), "venda-999", &fiscal.InvoicePayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalService)

	var extErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "Campos obrigatórios ausentes", extErr.Message)
	assert.Equal(t, []string{"NCM inválido", "CFOP obrigatório"}, extErr.Details)
}

func TestClient_RespostaInvalida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`nao é json`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Consult(context.Background(), "venda-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decodificar resposta")
}
