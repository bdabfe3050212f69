package http_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chopp-api/internal/application/auth"
	"github.com/jhoicas/chopp-api/internal/application/chatbot"
	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/application/inventory"
	"github.com/jhoicas/chopp-api/internal/application/reporting"
	"github.com/jhoicas/chopp-api/internal/application/sales"
	"github.com/jhoicas/chopp-api/internal/application/usecase"
	"github.com/jhoicas/chopp-api/internal/infrastructure/memory"
	"github.com/jhoicas/chopp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/chopp-api/internal/infrastructure/twilio"
	apphttp "github.com/jhoicas/chopp-api/internal/interfaces/http"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUser        = "operador"
	testPassword    = "chopp-123"
	testJWTSecret   = "test-secret-key-for-unit-tests"
	testIssuer      = "chopp-api-test"
	testTwilioToken = "twilio-token"
)

type testEnv struct {
	app       *fiber.App
	store     *memory.Store
	authUC    *auth.AuthUseCase
	signature *twilio.SignatureValidator
}

// newTestEnv arma la aplicación completa sobre el almacén en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore()

	authUC := auth.NewAuthUseCase(
		auth.Credentials{User: testUser, Password: testPassword},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
	reportUC := reporting.NewReportUseCase(store.Sales(), pdf.NewMarotoReportGenerator("Chopp Teste"))
	signature := twilio.NewSignatureValidator(testTwilioToken)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      usecase.NewProductUseCase(store.Products()),
		MovementUC:     inventory.NewMovementUseCase(store.Products(), store.Movements(), log),
		RecordSale:     sales.NewRecordSaleUseCase(store, log),
		ReportUC:       reportUC,
		Interpreter:    chatbot.NewInterpreter(reportUC, log),
		Signature:      signature,
		BusinessName:   "Chopp Teste",
		WebhookEnabled: true,
		Log:            log,
	})
	return &testEnv{app: app, store: store, authUC: authUC, signature: signature}
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

// do ejecuta la petición con Basic auth válido salvo que headers traiga Authorization.
func (e *testEnv) do(t *testing.T, req *http.Request, headers map[string]string) *http.Response {
	t.Helper()
	req.Header.Set(fiber.HeaderAuthorization, basicAuth(testUser, testPassword))
	for k, v := range headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) postJSON(t *testing.T, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return e.do(t, req, headers)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return e.do(t, req, headers)
}

func (e *testEnv) get(t *testing.T, path string, headers map[string]string) *http.Response {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, path, nil), headers)
}

// createProduct da de alta un producto y devuelve su ID.
func (e *testEnv) createProduct(t *testing.T, name string, kegPrice float64, literPrice *float64) string {
	t.Helper()
	body := map[string]any{"name": name, "keg_price": kegPrice}
	if literPrice != nil {
		body["liter_price"] = *literPrice
	}
	resp := e.postJSON(t, "/api/products", body, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.ProductResponse
	decode(t, resp, &out)
	return out.ID
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func ptr(v float64) *float64 { return &v }
