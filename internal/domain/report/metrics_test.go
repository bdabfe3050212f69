package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/entity"
	"github.com/jhoicas/chopp-api/internal/domain/report"
)

func sale(weekday, total string, costs ...string) *entity.Sale {
	s := &entity.Sale{Weekday: weekday, Total: decimal.RequireFromString(total)}
	fields := []**decimal.Decimal{&s.StaffCost, &s.CupsCost, &s.InvoiceCost}
	for i, c := range costs {
		if c == "" {
			continue
		}
		d := decimal.RequireFromString(c)
		*fields[i] = &d
	}
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeMetrics
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeMetrics_EntradaVacia(t *testing.T) {
	m := report.ComputeMetrics(nil)
	assert.True(t, m.GrossRevenue.IsZero())
	assert.True(t, m.NetRevenue.IsZero())
	assert.True(t, m.Average.IsZero())
	assert.True(t, m.TotalExpenses().IsZero())
	assert.Equal(t, 0, m.Days)
}

// 100 + 250.50 + 50 = 400.50 bruto; gastos 52 → 348.50 líquido.
func TestComputeMetrics_SumasYGastos(t *testing.T) {
	m := report.ComputeMetrics([]*entity.Sale{
		sale("Friday", "100", "20", "5"),
		sale("Saturday", "250.50", "", "10", "2"),
		sale("Sunday", "50", "15"),
	})
	assert.Equal(t, "400.5", m.GrossRevenue.String())
	assert.Equal(t, "348.5", m.NetRevenue.String())
	assert.Equal(t, "133.5", m.Average.String())
	assert.Equal(t, "35", m.StaffExpense.String())
	assert.Equal(t, "15", m.CupsExpense.String())
	assert.Equal(t, "2", m.InvoiceExpense.String())
	assert.Equal(t, "52", m.TotalExpenses().String())
	assert.Equal(t, 3, m.Days)
}

// Una venta con total cero cuenta como registro.
func TestComputeMetrics_TotalCeroCuenta(t *testing.T) {
	m := report.ComputeMetrics([]*entity.Sale{sale("Monday", "0"), sale("Monday", "10")})
	assert.Equal(t, 2, m.Days)
	assert.Equal(t, "5", m.Average.String())
}

// El resultado no depende del orden de las ventas.
func TestComputeMetrics_InvarianteAPermutacion(t *testing.T) {
	a := sale("Monday", "10.005", "1.333")
	b := sale("Tuesday", "20.1", "", "0.25")
	c := sale("Friday", "7.777", "", "", "3")
	m1 := report.ComputeMetrics([]*entity.Sale{a, b, c})
	m2 := report.ComputeMetrics([]*entity.Sale{c, a, b})
	assert.True(t, m1.GrossRevenue.Equal(m2.GrossRevenue))
	assert.True(t, m1.NetRevenue.Equal(m2.NetRevenue))
	assert.True(t, m1.Average.Equal(m2.Average))
	assert.True(t, m1.TotalExpenses().Equal(m2.TotalExpenses()))
	assert.Equal(t, m1.Days, m2.Days)
}

// El redondeo se hace al final: 3 × 0.333 = 0.999 → 1.00 (no 0.99).
func TestComputeMetrics_RedondeoEnLaFrontera(t *testing.T) {
	m := report.ComputeMetrics([]*entity.Sale{
		sale("Monday", "0.333"), sale("Monday", "0.333"), sale("Monday", "0.333"),
	})
	assert.Equal(t, "1", m.GrossRevenue.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// RankWeekdays
// ──────────────────────────────────────────────────────────────────────────────

func TestRankWeekdays_SinVentas(t *testing.T) {
	assert.Nil(t, report.RankWeekdays(nil))
}

// Empates se resuelven por orden de aparición, no alfabético.
func TestRankWeekdays_EmpateEstable(t *testing.T) {
	got := report.RankWeekdays([]*entity.Sale{sale("Monday", "10"), sale("Tuesday", "10")})
	require.Len(t, got, 2)
	assert.Equal(t, "Monday", got[0].Weekday)
	assert.Equal(t, "Tuesday", got[1].Weekday)

	got = report.RankWeekdays([]*entity.Sale{sale("Tuesday", "10"), sale("Monday", "10")})
	assert.Equal(t, "Tuesday", got[0].Weekday)
}

func TestRankWeekdays_SumaYOrdena(t *testing.T) {
	got := report.RankWeekdays([]*entity.Sale{
		sale("Friday", "100"),
		sale("Saturday", "300"),
		sale("Friday", "250"),
		sale("Sunday", "50"),
	})
	require.Len(t, got, 3)
	assert.Equal(t, "Friday", got[0].Weekday)
	assert.Equal(t, "350", got[0].Total.String())
	assert.Equal(t, "Saturday", got[1].Weekday)
	assert.Equal(t, "Sunday", got[2].Weekday)
}

// ──────────────────────────────────────────────────────────────────────────────
// Periodos
// ──────────────────────────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

// Diciembre cierra en el 1 de enero del año siguiente.
func TestMonth_DiciembreCruzaElAnio(t *testing.T) {
	p, err := report.Month(12, 2025)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 12, 1), p.Start)
	assert.Equal(t, date(2026, 1, 1), p.End)

	pm, py := report.PriorMonth(12, 2025)
	prior, err := report.Month(pm, py)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 11, 1), prior.Start)
	assert.Equal(t, date(2025, 12, 1), prior.End)
}

// El mes anterior a enero es diciembre del año anterior.
func TestPriorMonth_Enero(t *testing.T) {
	m, y := report.PriorMonth(1, 2026)
	assert.Equal(t, 12, m)
	assert.Equal(t, 2025, y)
}

func TestMonth_FueraDeRango(t *testing.T) {
	_, err := report.Month(13, 2025)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = report.Month(0, 2025)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = report.Month(5, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = report.Month(5, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestYear(t *testing.T) {
	p, err := report.Year(2025)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 1, 1), p.Start)
	assert.Equal(t, date(2026, 1, 1), p.End)

	_, err = report.Year(0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = report.Year(10000)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPortugueseWeekday(t *testing.T) {
	assert.Equal(t, "Sábado", report.PortugueseWeekday("Saturday"))
	assert.Equal(t, "Segunda-feira", report.PortugueseWeekday("monday"))
	assert.Equal(t, "Feriado", report.PortugueseWeekday("Feriado"))
}
