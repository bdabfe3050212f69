package http_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chopp-api/internal/application/dto"
)

// registrarVentas carga dos ventas a granel (sábado y viernes) en octubre de 2025.
func registrarVentas(t *testing.T, env *testEnv) {
	t.Helper()
	id := env.createProduct(t, "Pilsen", 800, ptr(10))
	for _, v := range []map[string]any{
		{"date": "2025-10-03", "product_id": id, "type": "loose", "total": 300},
		{"date": "2025-10-04", "product_id": id, "type": "loose", "total": 500, "staff_cost": 50},
		{"date": "2025-10-11", "product_id": id, "type": "loose", "total": 200},
	} {
		resp := env.postJSON(t, "/api/sales", v, nil)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
}

func TestReporte_SinVentas_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/api/reports?start=2025-10-01&end=2025-11-01", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestReporte_RangoInvalido(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/api/reports?start=01/10/2025&end=2025-11-01", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.get(t, "/api/reports?start=2025-11-01&end=2025-11-01", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_ARGUMENT", body.Code)
}

func TestReporte_Metricas(t *testing.T) {
	env := newTestEnv(t)
	registrarVentas(t, env)

	resp := env.get(t, "/api/reports?start=2025-10-01&end=2025-11-01", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var m dto.MetricsResponse
	decode(t, resp, &m)

	assert.Equal(t, "2025-10-01", m.Start)
	assert.Equal(t, "2025-11-01", m.End)
	assert.Equal(t, 3, m.Days)
	assert.True(t, dec("1000").Equal(m.GrossRevenue), "gross = %s", m.GrossRevenue)
	assert.True(t, dec("950").Equal(m.NetRevenue), "net = %s", m.NetRevenue)
	assert.True(t, dec("333.33").Equal(m.Average), "avg = %s", m.Average)
	assert.True(t, dec("50").Equal(m.TotalExpenses))
}

func TestReporte_RankingDiasDeLaSemana(t *testing.T) {
	env := newTestEnv(t)
	registrarVentas(t, env)

	resp := env.get(t, "/api/reports/weekdays?start=2025-10-01&end=2025-11-01", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var r dto.WeekdayRankingResponse
	decode(t, resp, &r)

	require.Len(t, r.Items, 2)
	assert.Equal(t, 1, r.Items[0].Position)
	assert.Equal(t, "Saturday", r.Items[0].Weekday)
	assert.True(t, dec("700").Equal(r.Items[0].Total))
	assert.Equal(t, "Friday", r.Items[1].Weekday)
	assert.True(t, dec("300").Equal(r.Items[1].Total))
}

func TestReporte_RankingSinVentas_ListaVacia(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/api/reports/weekdays?start=2025-10-01&end=2025-11-01", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"items":[]`)
}

func TestReporte_PDFMensual(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/api/reports/monthly.pdf?month=10&year=2025", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = env.get(t, "/api/reports/monthly.pdf?month=13&year=2025", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	registrarVentas(t, env)
	resp = env.get(t, "/api/reports/monthly.pdf?month=10&year=2025", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "relatorio-2025-10.pdf")
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF-"))
}
