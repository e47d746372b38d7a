package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	apphttp "github.com/frigoerp/frigorifico-api/internal/interfaces/http"
	pkgjwt "github.com/frigoerp/frigorifico-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUserName  = "Usuário de Teste"
	testIssuer    = "frigorifico-api-test"
	testExpMin    = 60
)

// buildPermissionApp monta um app Fiber mínimo com AuthMiddleware +
// RequirePermission e um handler que devolve 200 se passar.
func buildPermissionApp(module, action string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(module, action),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app
}

// tokenForRole gera um JWT com o papel indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Admin tem acesso total a qualquer módulo.
func TestRequirePermission_AdminAcessaFinanceiro(t *testing.T) {
	app := buildPermissionApp(domain.ModuleFinance, domain.ActionUpdate)
	resp := doRequest(t, app, tokenForRole(t, domain.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, domain.RoleAdmin, body["role"])
}

// Vendas não tem acesso ao financeiro.
func TestRequirePermission_VendasBloqueadoNoFinanceiro(t *testing.T) {
	app := buildPermissionApp(domain.ModuleFinance, domain.ActionRead)
	resp := doRequest(t, app, tokenForRole(t, domain.RoleVendas))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Financeiro lê vendas mas não cria.
func TestRequirePermission_FinanceiroSomenteLeituraEmVendas(t *testing.T) {
	readApp := buildPermissionApp(domain.ModuleSales, domain.ActionRead)
	resp := doRequest(t, readApp, tokenForRole(t, domain.RoleFinanceiro))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	createApp := buildPermissionApp(domain.ModuleSales, domain.ActionCreate)
	resp = doRequest(t, createApp, tokenForRole(t, domain.RoleFinanceiro))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Produção cria no estoque; vendas só lê.
func TestRequirePermission_ProducaoCriaNoEstoque(t *testing.T) {
	app := buildPermissionApp(domain.ModuleInventory, domain.ActionCreate)

	resp := doRequest(t, app, tokenForRole(t, domain.RoleProducao))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, tokenForRole(t, domain.RoleVendas))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Papel desconhecido não tem acesso a nada.
func TestRequirePermission_PapelDesconhecidoBloqueado(t *testing.T) {
	app := buildPermissionApp(domain.ModuleRegistries, domain.ActionRead)
	resp := doRequest(t, app, tokenForRole(t, "estagiario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Token com papel vazio → 401.
func TestRequirePermission_TokenSemPapel(t *testing.T) {
	app := buildPermissionApp(domain.ModuleSales, domain.ActionRead)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Sem header Authorization → 401.
func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := buildPermissionApp(domain.ModuleSales, domain.ActionRead)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado → 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildPermissionApp(domain.ModuleSales, domain.ActionRead)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"name":    apphttp.GetUserName(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, domain.RoleFinanceiro))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUserName, body["name"])
	assert.Equal(t, domain.RoleFinanceiro, body["role"])
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, domain.RoleProducao, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, name, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUserName, name)
	assert.Equal(t, domain.RoleProducao, role)
}

func TestJWT_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, domain.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_SecretIncorreto(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, domain.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err)
}
