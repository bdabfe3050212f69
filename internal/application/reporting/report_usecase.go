// Package reporting contiene los casos de uso de reportes financieros sobre ventas
// registradas: métricas por rango, ranking de días y PDF mensual.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/internal/domain/report"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
)

// ReportPDFGenerator genera la representación PDF del reporte mensual.
type ReportPDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, label string, metrics report.Metrics, ranking []report.WeekdayTotal) ([]byte, error)
}

// ReportUseCase agrega ventas del almacén. No guarda nada entre llamadas.
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	pdf      ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se expone el PDF.
func NewReportUseCase(saleRepo repository.SaleRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, pdf: pdf}
}

// Report métricas de [start, end). Devuelve nil (sin error) si no hay ventas en el rango.
func (uc *ReportUseCase) Report(ctx context.Context, start, end time.Time) (*report.Metrics, error) {
	sales, err := uc.saleRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas: %w", err)
	}
	if len(sales) == 0 {
		return nil, nil
	}
	m := report.ComputeMetrics(sales)
	return &m, nil
}

// RankWeekdays ranking de días de la semana por ingreso en [start, end). nil si no hay ventas.
func (uc *ReportUseCase) RankWeekdays(ctx context.Context, start, end time.Time) ([]report.WeekdayTotal, error) {
	sales, err := uc.saleRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas: %w", err)
	}
	return report.RankWeekdays(sales), nil
}

// MonthlyPDF genera el PDF del mes (métricas + ranking). domain.ErrNotFound si no hay ventas.
//
// Dos consultas en paralelo: métricas y ranking del mismo periodo.
func (uc *ReportUseCase) MonthlyPDF(ctx context.Context, month, year int) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte: generador PDF no configurado")
	}
	period, err := report.Month(month, year)
	if err != nil {
		return nil, err
	}

	type metricsResult struct {
		metrics *report.Metrics
		err     error
	}
	type rankingResult struct {
		ranking []report.WeekdayTotal
		err     error
	}
	metricsCh := make(chan metricsResult, 1)
	rankingCh := make(chan rankingResult, 1)

	go func() {
		m, err := uc.Report(ctx, period.Start, period.End)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		r, err := uc.RankWeekdays(ctx, period.Start, period.End)
		rankingCh <- rankingResult{r, err}
	}()

	metrics := <-metricsCh
	ranking := <-rankingCh
	if metrics.err != nil {
		return nil, metrics.err
	}
	if ranking.err != nil {
		return nil, ranking.err
	}
	if metrics.metrics == nil {
		return nil, fmt.Errorf("%w: sin ventas en %02d/%d", domain.ErrNotFound, month, year)
	}
	return uc.pdf.GenerateMonthlyReportPDF(ctx, monthLabel(period.Start), *metrics.metrics, ranking.ranking)
}

// ToMetricsResponse adapta las métricas al DTO HTTP.
func ToMetricsResponse(start, end time.Time, m report.Metrics) dto.MetricsResponse {
	return dto.MetricsResponse{
		Start:          start.Format(dto.DateLayout),
		End:            end.Format(dto.DateLayout),
		GrossRevenue:   m.GrossRevenue,
		NetRevenue:     m.NetRevenue,
		Average:        m.Average,
		StaffExpense:   m.StaffExpense,
		CupsExpense:    m.CupsExpense,
		InvoiceExpense: m.InvoiceExpense,
		TotalExpenses:  m.TotalExpenses(),
		Days:           m.Days,
	}
}

// ToWeekdayRankingResponse adapta el ranking al DTO HTTP (posiciones desde 1).
func ToWeekdayRankingResponse(start, end time.Time, ranking []report.WeekdayTotal) dto.WeekdayRankingResponse {
	out := dto.WeekdayRankingResponse{
		Start: start.Format(dto.DateLayout),
		End:   end.Format(dto.DateLayout),
		Items: make([]dto.WeekdayTotalResponse, 0, len(ranking)),
	}
	for i, w := range ranking {
		out.Items = append(out.Items, dto.WeekdayTotalResponse{Position: i + 1, Weekday: w.Weekday, Total: w.Total.Round(2)})
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Outubro 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
