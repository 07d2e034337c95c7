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

	apphttp "github.com/jsengenhariacivil/JSengCRM/internal/interfaces/http"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
	pkgjwt "github.com/jsengenhariacivil/JSengCRM/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "jsengcrm-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para parsear o JWT e carregar os locals
//   - RequirePermission para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(cap permissions.Capability) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar erros internos nos testes
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Rota protegida: JWT + permissão
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(cap),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole gera um JWT com o preset de permissões do perfil indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, permissions.ForRole(role), testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protected e devolve a resposta.
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o perfil tem a capacidade exigida → HTTP 200.
func TestRequirePermission_FinanceiroAcessaFinanceiro(t *testing.T) {
	app := buildTestApp(permissions.EditFinancial)
	resp := doRequest(t, app, tokenForRole(t, permissions.RoleFinanceiro))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Financeiro deve acessar rota que exige editFinancial")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "a resposta deve incluir ok:true")
	assert.Equal(t, permissions.RoleFinanceiro, body["role"])
}

// Caso 1b: Administrador tem todas as capacidades → HTTP 200 em qualquer rota.
func TestRequirePermission_AdministradorAcessaTudo(t *testing.T) {
	for _, cap := range []permissions.Capability{
		permissions.ViewFinancial,
		permissions.EditFinancial,
		permissions.ViewProjects,
		permissions.EditProjects,
		permissions.ManageSettings,
	} {
		app := buildTestApp(cap)
		resp := doRequest(t, app, tokenForRole(t, permissions.RoleAdministrador))
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"Administrador deve acessar rota que exige %s", cap)
		resp.Body.Close()
	}
}

// Caso 2: o perfil não tem a capacidade → HTTP 403 Forbidden.
func TestRequirePermission_EngenhariaBloqueadaNoFinanceiro(t *testing.T) {
	app := buildTestApp(permissions.ViewFinancial)
	resp := doRequest(t, app, tokenForRole(t, permissions.RoleEngenharia))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Engenharia não deve acessar rota financeira")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
	assert.Contains(t, string(body), "acesso restrito",
		"a mensagem deve ser o aviso de acesso restrito")
}

// Caso 2b: Financeiro só lê projetos, não edita → HTTP 403.
func TestRequirePermission_FinanceiroNaoEditaProjetos(t *testing.T) {
	app := buildTestApp(permissions.EditProjects)
	resp := doRequest(t, app, tokenForRole(t, permissions.RoleFinanceiro))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Visitante (preset vazio) é bloqueado em todas as rotas com guarda.
func TestRequirePermission_VisitanteBloqueadoEmTudo(t *testing.T) {
	for _, cap := range []permissions.Capability{
		permissions.ViewFinancial,
		permissions.ViewProjects,
		permissions.ManageSettings,
	} {
		app := buildTestApp(cap)
		resp := doRequest(t, app, tokenForRole(t, permissions.RoleVisitante))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"Visitante não deve acessar rota que exige %s", cap)
		resp.Body.Close()
	}
}

// Caso 4: sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermission_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(permissions.ViewProjects)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermission_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(permissions.ViewProjects)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extração dos claims do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		perms := apphttp.GetPermissions(c)
		return c.JSON(fiber.Map{
			"user_id":        apphttp.GetUserID(c),
			"role":           apphttp.GetRole(c),
			"view_financial": perms.Has(permissions.ViewFinancial),
			"edit_projects":  perms.Has(permissions.EditProjects),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, permissions.RoleGerente))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, permissions.RoleGerente, body["role"])
	assert.Equal(t, true, body["view_financial"], "Gerente enxerga o financeiro")
	assert.Equal(t, true, body["edit_projects"], "Gerente edita projetos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt — integridade do generate/parse com permissões
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ComPermissoes(t *testing.T) {
	perms := permissions.ForRole(permissions.RoleGerente)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, permissions.RoleGerente, perms, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, permissions.RoleGerente, claims.Role)
	assert.Equal(t, perms, claims.Permissions)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, permissions.RoleAdministrador,
		permissions.ForRole(permissions.RoleAdministrador), testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, permissions.RoleAdministrador,
		permissions.ForRole(permissions.RoleAdministrador), testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
