// Package chatbot interpreta comandos de texto libre (WhatsApp) y responde con
// reportes financieros en portugués. Nunca devuelve error: todo fallo se
// convierte en un texto de respuesta.
package chatbot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/chopp-api/internal/domain/report"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// Reporter fuente de métricas (reporting.ReportUseCase).
// Report y RankWeekdays devuelven nil sin error cuando no hay ventas.
type Reporter interface {
	Report(ctx context.Context, start, end time.Time) (*report.Metrics, error)
	RankWeekdays(ctx context.Context, start, end time.Time) ([]report.WeekdayTotal, error)
}

// Interpreter traduce comandos a respuestas.
type Interpreter struct {
	reporter Reporter
	log      *logger.Logger
}

// NewInterpreter construye el intérprete.
func NewInterpreter(reporter Reporter, log *logger.Logger) *Interpreter {
	return &Interpreter{reporter: reporter, log: log.Component("chatbot")}
}

// Interpret responde al texto recibido.
func (i *Interpreter) Interpret(ctx context.Context, raw string) string {
	cmd := Parse(raw)
	switch cmd.Kind {
	case CommandReport:
		return i.monthlyReport(ctx, cmd.Args)
	case CommandAnnualReport:
		return i.annualReport(ctx, cmd.Args)
	case CommandCompare:
		return i.compare(ctx, cmd.Args)
	case CommandBestDays:
		return i.bestDays(ctx, cmd.Args)
	case CommandHelp:
		return replyHelp
	}
	return replyUnknown
}

// intArgs convierte los primeros n argumentos a enteros. Argumentos extra se ignoran.
func intArgs(args []string, n int) ([]int, bool) {
	if len(args) < n {
		return nil, false
	}
	out := make([]int, n)
	for k := 0; k < n; k++ {
		v, err := strconv.Atoi(args[k])
		if err != nil {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}

func (i *Interpreter) failed(err error, cmd string) string {
	i.log.Error().Err(err).Str("command", cmd).Msg("consulta de reporte")
	return replyInternalError
}

func (i *Interpreter) monthlyReport(ctx context.Context, args []string) string {
	n, ok := intArgs(args, 2)
	if !ok {
		return usageReport
	}
	month, year := n[0], n[1]
	current, err := report.Month(month, year)
	if err != nil {
		return usageReport
	}
	m, err := i.reporter.Report(ctx, current.Start, current.End)
	if err != nil {
		return i.failed(err, "relatorio")
	}
	if m == nil {
		return fmt.Sprintf("Nenhum registro de vendas encontrado para %d/%d.", month, year)
	}

	pm, py := report.PriorMonth(month, year)
	prior, err := report.Month(pm, py)
	if err != nil {
		return usageReport
	}
	pMetrics, err := i.reporter.Report(ctx, prior.Start, prior.End)
	if err != nil {
		return i.failed(err, "relatorio")
	}
	return formatMonthlyReport(month, year, *m, pMetrics)
}

func (i *Interpreter) annualReport(ctx context.Context, args []string) string {
	n, ok := intArgs(args, 1)
	if !ok {
		return usageAnnualReport
	}
	year := n[0]
	period, err := report.Year(year)
	if err != nil {
		return usageAnnualReport
	}
	m, err := i.reporter.Report(ctx, period.Start, period.End)
	if err != nil {
		return i.failed(err, "relatorio anual")
	}
	if m == nil {
		return fmt.Sprintf("Nenhum registro para o ano %d", year)
	}
	return formatAnnualReport(year, *m)
}

func (i *Interpreter) compare(ctx context.Context, args []string) string {
	n, ok := intArgs(args, 4)
	if !ok {
		return usageCompare
	}
	m1, y1, m2, y2 := n[0], n[1], n[2], n[3]
	p1, err := report.Month(m1, y1)
	if err != nil {
		return usageCompare
	}
	p2, err := report.Month(m2, y2)
	if err != nil {
		return usageCompare
	}
	first, err := i.reporter.Report(ctx, p1.Start, p1.End)
	if err != nil {
		return i.failed(err, "comparar")
	}
	second, err := i.reporter.Report(ctx, p2.Start, p2.End)
	if err != nil {
		return i.failed(err, "comparar")
	}
	switch {
	case first == nil:
		return fmt.Sprintf("Não há dados para o primeiro período (%d/%d) para comparar.", m1, y1)
	case second == nil:
		return fmt.Sprintf("Não há dados para o segundo período (%d/%d) para comparar.", m2, y2)
	}
	return formatComparison(m1, y1, m2, y2, *first, *second)
}

func (i *Interpreter) bestDays(ctx context.Context, args []string) string {
	n, ok := intArgs(args, 2)
	if !ok {
		return usageBestDays
	}
	month, year := n[0], n[1]
	period, err := report.Month(month, year)
	if err != nil {
		return usageBestDays
	}
	ranking, err := i.reporter.RankWeekdays(ctx, period.Start, period.End)
	if err != nil {
		return i.failed(err, "melhores dias")
	}
	if len(ranking) == 0 {
		return fmt.Sprintf("Não há dados de vendas para %d/%d.", month, year)
	}
	return formatBestDays(month, year, ranking)
}
