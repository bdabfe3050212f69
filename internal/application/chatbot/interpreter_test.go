package chatbot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chopp-api/internal/application/chatbot"
	"github.com/jhoicas/chopp-api/internal/domain/report"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type window struct{ start, end time.Time }

// fakeReporter responde según el inicio de la ventana y registra las ventanas pedidas.
type fakeReporter struct {
	metrics map[time.Time]*report.Metrics
	ranking map[time.Time][]report.WeekdayTotal
	calls   []window
	err     error
}

func (f *fakeReporter) Report(_ context.Context, start, end time.Time) (*report.Metrics, error) {
	f.calls = append(f.calls, window{start, end})
	if f.err != nil {
		return nil, f.err
	}
	return f.metrics[start], nil
}

func (f *fakeReporter) RankWeekdays(_ context.Context, start, end time.Time) ([]report.WeekdayTotal, error) {
	f.calls = append(f.calls, window{start, end})
	if f.err != nil {
		return nil, f.err
	}
	return f.ranking[start], nil
}

func d(y int, m time.Month) time.Time { return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC) }

func metrics(gross, net string, days int) *report.Metrics {
	g := decimal.RequireFromString(gross)
	return &report.Metrics{
		GrossRevenue:   g,
		NetRevenue:     decimal.RequireFromString(net),
		Average:        g.Div(decimal.NewFromInt(int64(days))).Round(2),
		StaffExpense:   decimal.NewFromInt(30),
		CupsExpense:    decimal.NewFromInt(10),
		InvoiceExpense: decimal.NewFromInt(5),
		Days:           days,
	}
}

func newInterpreter(f *fakeReporter) *chatbot.Interpreter {
	return chatbot.NewInterpreter(f, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// relatorio
// ──────────────────────────────────────────────────────────────────────────────

// Diciembre: ventana [2025-12-01, 2026-01-01) y mes anterior [2025-11-01, 2025-12-01).
func TestInterpret_RelatorioDiciembreCruzaElAnio(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{
		d(2025, 12): metrics("400", "200", 4),
		d(2025, 11): metrics("300", "150", 3),
	}}
	reply := newInterpreter(f).Interpret(context.Background(), "relatorio 12 2025")

	require.Len(t, f.calls, 2)
	assert.Equal(t, window{d(2025, 12), d(2026, 1)}, f.calls[0])
	assert.Equal(t, window{d(2025, 11), d(2025, 12)}, f.calls[1])

	want := "🧾 Relatório 12/2025\n" +
		"--------------------------\n" +
		"Receita bruta: R$ 400.00\n" +
		"Receita líquida: R$ 200.00\n" +
		"Média por dia: R$ 100.00\n" +
		"--------------------------\n" +
		"Gastos Detalhados:\n" +
		"  - Funcionários: R$ 30.00\n" +
		"  - Copos: R$ 10.00\n" +
		"  - Boleto: R$ 5.00\n" +
		"Total de Gastos: R$ 45.00\n" +
		"--------------------------\n" +
		"Dias registrados: 4\n" +
		"📈 Tendência: 33.33% em relação ao mês anterior."
	assert.Equal(t, want, reply)
}

// Enero compara con diciembre del año anterior.
func TestInterpret_RelatorioEneroUsaDiciembreAnterior(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{d(2026, 1): metrics("100", "50", 1)}}
	newInterpreter(f).Interpret(context.Background(), "relatório 1 2026")
	require.Len(t, f.calls, 2)
	assert.Equal(t, window{d(2025, 12), d(2026, 1)}, f.calls[1])
}

// Dos mensajes distintos de N/A: mes anterior sin datos y mes anterior con líquido cero.
func TestInterpret_RelatorioTendenciaNA(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{d(2025, 10): metrics("100", "50", 1)}}
	reply := newInterpreter(f).Interpret(context.Background(), "relatorio 10 2025")
	assert.Contains(t, reply, "📈 Tendência: N/A (sem dados do mês anterior).")

	f.metrics[d(2025, 9)] = metrics("45", "0", 1)
	reply = newInterpreter(f).Interpret(context.Background(), "relatorio 10 2025")
	assert.Contains(t, reply, "📈 Tendência: N/A (mês anterior sem receita).")
}

func TestInterpret_RelatorioSinDatos(t *testing.T) {
	f := &fakeReporter{}
	reply := newInterpreter(f).Interpret(context.Background(), "relatorio 10 2025")
	assert.Equal(t, "Nenhum registro de vendas encontrado para 10/2025.", reply)
	assert.Len(t, f.calls, 1, "sin datos no se consulta el mes anterior")
}

func TestInterpret_RelatorioFormatoInvalido(t *testing.T) {
	for _, in := range []string{"relatorio", "relatorio 10", "relatorio outubro 2025", "relatorio 13 2025", "relatorio 0 2025", "relatorio 5 0", "relatorio 5 -1"} {
		f := &fakeReporter{}
		assert.Equal(t, "Formato inválido. Use: relatorio <mês> <ano>", newInterpreter(f).Interpret(context.Background(), in), in)
		assert.Empty(t, f.calls, in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// relatorio anual
// ──────────────────────────────────────────────────────────────────────────────

func TestInterpret_RelatorioAnual(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{d(2025, 1): metrics("1200.5", "1000", 10)}}
	reply := newInterpreter(f).Interpret(context.Background(), "relatorio anual 2025")
	assert.Equal(t, "🗓️ Relatório Anual 2025\n"+
		"--------------------------\n"+
		"Receita bruta: R$ 1200.50\n"+
		"Receita líquida: R$ 1000.00\n"+
		"Média por dia: R$ 120.05\n"+
		"Dias registrados: 10", reply)
	assert.Equal(t, window{d(2025, 1), d(2026, 1)}, f.calls[0])

	assert.Equal(t, "Nenhum registro para o ano 2024", newInterpreter(f).Interpret(context.Background(), "relatorio anual 2024"))
	assert.Equal(t, "Formato inválido. Use: relatorio anual <ano>", newInterpreter(f).Interpret(context.Background(), "relatorio anual"))
	assert.Equal(t, "Formato inválido. Use: relatorio anual <ano>", newInterpreter(f).Interpret(context.Background(), "relatorio anual 0"))
	assert.Len(t, f.calls, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// comparar
// ──────────────────────────────────────────────────────────────────────────────

func TestInterpret_Comparar(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{
		d(2025, 9):  metrics("500", "400", 5),
		d(2025, 10): metrics("400", "300", 4),
	}}
	reply := newInterpreter(f).Interpret(context.Background(), "comparar 9 2025 10 2025")
	assert.Equal(t, "📊 Comparativo: 9/2025 vs 10/2025\n"+
		"--------------------------\n"+
		"Receita Líquida:\n"+
		"  - 9/2025: R$ 400.00\n"+
		"  - 10/2025: R$ 300.00\n"+
		"  - Variação: -25.00%", reply)
}

func TestInterpret_CompararPeriodosSinDatos(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{d(2025, 10): metrics("400", "300", 4)}}
	i := newInterpreter(f)
	assert.Equal(t, "Não há dados para o primeiro período (9/2025) para comparar.", i.Interpret(context.Background(), "comparar 9 2025 10 2025"))
	assert.Equal(t, "Não há dados para o segundo período (8/2025) para comparar.", i.Interpret(context.Background(), "comparar 10 2025 8 2025"))
}

// Base con líquido cero → variación N/A.
func TestInterpret_CompararBaseCero(t *testing.T) {
	f := &fakeReporter{metrics: map[time.Time]*report.Metrics{
		d(2025, 9):  metrics("45", "0", 1),
		d(2025, 10): metrics("400", "300", 4),
	}}
	reply := newInterpreter(f).Interpret(context.Background(), "comparar 9 2025 10 2025")
	assert.Contains(t, reply, "  - Variação: N/A")
}

func TestInterpret_CompararFormatoInvalido(t *testing.T) {
	f := &fakeReporter{}
	assert.Equal(t, "Formato inválido. Use: comparar <m1> <a1> <m2> <a2>", newInterpreter(f).Interpret(context.Background(), "comparar 9 2025 10"))
}

// ──────────────────────────────────────────────────────────────────────────────
// melhores dias
// ──────────────────────────────────────────────────────────────────────────────

// Mes y año se leen de las posiciones 2 y 3 de la lista de tokens.
func TestInterpret_MelhoresDias(t *testing.T) {
	f := &fakeReporter{ranking: map[time.Time][]report.WeekdayTotal{
		d(2025, 10): {
			{Weekday: "Saturday", Total: decimal.RequireFromString("1500")},
			{Weekday: "Friday", Total: decimal.RequireFromString("980.5")},
		},
	}}
	reply := newInterpreter(f).Interpret(context.Background(), "melhores dias 10 2025")
	require.Len(t, f.calls, 1)
	assert.Equal(t, window{d(2025, 10), d(2025, 11)}, f.calls[0])
	assert.Equal(t, "🏆 Melhores Dias de 10/2025 🏆\n1. Sábado: R$ 1500.00\n2. Sexta-feira: R$ 980.50", reply)
}

func TestInterpret_MelhoresDiasSinDatos(t *testing.T) {
	f := &fakeReporter{}
	assert.Equal(t, "Não há dados de vendas para 10/2025.", newInterpreter(f).Interpret(context.Background(), "melhores dias 10 2025"))
	assert.Equal(t, "Formato inválido. Use: melhores dias <mês> <ano>", newInterpreter(f).Interpret(context.Background(), "melhores dias 2025"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ajuda, desconocidos y fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestInterpret_Ajuda(t *testing.T) {
	reply := newInterpreter(&fakeReporter{}).Interpret(context.Background(), "AJUDA")
	assert.Equal(t, "Comandos disponíveis:\n"+
		"1. `relatorio <mês> <ano>`\n"+
		"2. `relatorio anual <ano>`\n"+
		"3. `comparar <m1> <a1> <m2> <a2>`\n"+
		"4. `melhores dias <mês> <ano>`\n"+
		"5. `ajuda`", reply)
}

func TestInterpret_Desconocido(t *testing.T) {
	i := newInterpreter(&fakeReporter{})
	for _, in := range []string{"", "   ", "oi", "melhores"} {
		assert.Equal(t, "Comando não reconhecido. Digite `ajuda` para ver as opções.", i.Interpret(context.Background(), in), in)
	}
}

// Un fallo del almacén se convierte en respuesta, nunca en error.
func TestInterpret_FalloDelReporter(t *testing.T) {
	f := &fakeReporter{err: errors.New("conexión perdida")}
	reply := newInterpreter(f).Interpret(context.Background(), "relatorio 10 2025")
	assert.NotEmpty(t, reply)
	assert.NotContains(t, reply, "conexión perdida")
}
