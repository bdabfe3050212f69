package chatbot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/domain/report"
)

const separator = "--------------------------"

const (
	replyUnknown       = "Comando não reconhecido. Digite `ajuda` para ver as opções."
	replyInternalError = "Não foi possível consultar os dados agora. Tente novamente em instantes."

	usageReport       = "Formato inválido. Use: relatorio <mês> <ano>"
	usageAnnualReport = "Formato inválido. Use: relatorio anual <ano>"
	usageCompare      = "Formato inválido. Use: comparar <m1> <a1> <m2> <a2>"
	usageBestDays     = "Formato inválido. Use: melhores dias <mês> <ano>"
)

const replyHelp = "Comandos disponíveis:\n" +
	"1. `relatorio <mês> <ano>`\n" +
	"2. `relatorio anual <ano>`\n" +
	"3. `comparar <m1> <a1> <m2> <a2>`\n" +
	"4. `melhores dias <mês> <ano>`\n" +
	"5. `ajuda`"

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// percent variación con dos decimales: 0.3333 → "33.33%".
func percent(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// variation (actual / base) − 1. ok=false cuando la base es cero.
func variation(current, base decimal.Decimal) (decimal.Decimal, bool) {
	if base.IsZero() {
		return decimal.Zero, false
	}
	return current.Div(base).Sub(decimal.NewFromInt(1)), true
}

func formatMonthlyReport(month, year int, m report.Metrics, prior *report.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 Relatório %d/%d\n", month, year)
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Receita bruta: %s\n", money(m.GrossRevenue))
	fmt.Fprintf(&b, "Receita líquida: %s\n", money(m.NetRevenue))
	fmt.Fprintf(&b, "Média por dia: %s\n", money(m.Average))
	b.WriteString(separator + "\n")
	b.WriteString("Gastos Detalhados:\n")
	fmt.Fprintf(&b, "  - Funcionários: %s\n", money(m.StaffExpense))
	fmt.Fprintf(&b, "  - Copos: %s\n", money(m.CupsExpense))
	fmt.Fprintf(&b, "  - Boleto: %s\n", money(m.InvoiceExpense))
	fmt.Fprintf(&b, "Total de Gastos: %s\n", money(m.TotalExpenses()))
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Dias registrados: %d", m.Days)
	b.WriteString(trendLine(m, prior))
	return b.String()
}

func trendLine(m report.Metrics, prior *report.Metrics) string {
	if prior == nil {
		return "\n📈 Tendência: N/A (sem dados do mês anterior)."
	}
	v, ok := variation(m.NetRevenue, prior.NetRevenue)
	if !ok {
		return "\n📈 Tendência: N/A (mês anterior sem receita)."
	}
	return fmt.Sprintf("\n📈 Tendência: %s em relação ao mês anterior.", percent(v))
}

func formatAnnualReport(year int, m report.Metrics) string {
	return fmt.Sprintf("🗓️ Relatório Anual %d\n%s\nReceita bruta: %s\nReceita líquida: %s\nMédia por dia: %s\nDias registrados: %d",
		year, separator, money(m.GrossRevenue), money(m.NetRevenue), money(m.Average), m.Days)
}

func formatComparison(m1, y1, m2, y2 int, first, second report.Metrics) string {
	varText := "N/A"
	if v, ok := variation(second.NetRevenue, first.NetRevenue); ok {
		varText = percent(v)
	}
	return fmt.Sprintf("📊 Comparativo: %d/%d vs %d/%d\n%s\nReceita Líquida:\n  - %d/%d: %s\n  - %d/%d: %s\n  - Variação: %s",
		m1, y1, m2, y2, separator,
		m1, y1, money(first.NetRevenue),
		m2, y2, money(second.NetRevenue),
		varText)
}

func formatBestDays(month, year int, ranking []report.WeekdayTotal) string {
	lines := make([]string, 0, len(ranking)+1)
	lines = append(lines, fmt.Sprintf("🏆 Melhores Dias de %d/%d 🏆", month, year))
	for i, w := range ranking {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, report.PortugueseWeekday(w.Weekday), money(w.Total)))
	}
	return strings.Join(lines, "\n")
}
