// Package pdf genera el reporte mensual de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Relatório + período         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEITAS: bruta / líquida / média por dia / dias           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GASTOS: funcionários / copos / boleto / total              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Posição | Dia da semana | Receita                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/application/reporting"
	"github.com/jhoicas/chopp-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 156, Green: 94, Blue: 6}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporting.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

// NewMarotoReportGenerator construye el generador. businessName encabeza cada página.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// GenerateMonthlyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReportPDF(
	_ context.Context,
	label string,
	metrics report.Metrics,
	ranking []report.WeekdayTotal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Relatório "+label, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, label))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("RECEITAS"))
	m.AddRows(
		keyValueRow("Receita bruta", money(metrics.GrossRevenue)),
		keyValueRow("Receita líquida", money(metrics.NetRevenue)),
		keyValueRow("Média por dia", money(metrics.Average)),
		keyValueRow("Dias registrados", fmt.Sprintf("%d", metrics.Days)),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("GASTOS"))
	m.AddRows(
		keyValueRow("Funcionários", money(metrics.StaffExpense)),
		keyValueRow("Copos", money(metrics.CupsExpense)),
		keyValueRow("Boleto", money(metrics.InvoiceExpense)),
		totalRow("Total de gastos", money(metrics.TotalExpenses())),
	)

	if len(ranking) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitle("MELHORES DIAS"))
		m.AddRows(rankingHeaderRow())
		m.AddRows(rankingRows(ranking)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(business, label string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(business, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO MENSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func keyValueRow(key, value string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(key, props.Text{Size: 9, Left: 2, Color: colorGray})),
		col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Right: 2})),
	)
}

func totalRow(key, value string) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(key, props.Text{Style: fontstyle.Bold, Size: 10, Left: 2})),
		col.New(6).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Color: colorPrimary,
		})),
	)
}

func rankingHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("#", 2, align.Center),
		h("Dia da semana", 6, align.Left),
		h("Receita", 4, align.Right),
	)
}

// rankingRows una fila por día, en el orden del ranking.
func rankingRows(ranking []report.WeekdayTotal) []core.Row {
	rows := make([]core.Row, 0, len(ranking))
	for i, w := range ranking {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 9, Align: align.Center})),
			col.New(6).Add(text.New(report.PortugueseWeekday(w.Weekday), props.Text{Size: 9, Left: 1})),
			col.New(4).Add(text.New(money(w.Total), props.Text{Size: 9, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formato brasileño: 1234.5 → "R$ 1.234,50".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return "R$ " + sign + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles: "1000000" → "1.000.000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
