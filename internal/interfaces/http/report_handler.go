package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/application/reporting"
	"github.com/jhoicas/chopp-api/internal/domain"
)

// ReportHandler reportes financieros (protegido).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Metrics godoc
// @Summary      Métricas de un rango [start, end)
// @Tags         reports
// @Security     BasicAuth
// @Produce      json
// @Param        start  query  string  true  "YYYY-MM-DD (incluido)"
// @Param        end    query  string  true  "YYYY-MM-DD (excluido)"
// @Success      200    {object}  dto.MetricsResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Metrics(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	m, err := h.uc.Report(c.UserContext(), start, end)
	if err != nil {
		return writeError(c, err)
	}
	if m == nil {
		return writeError(c, fmt.Errorf("%w: sin ventas entre %s y %s", domain.ErrNotFound, c.Query("start"), c.Query("end")))
	}
	return c.JSON(reporting.ToMetricsResponse(start, end, *m))
}

// Weekdays godoc
// @Summary      Ranking de días de la semana por ingreso
// @Tags         reports
// @Security     BasicAuth
// @Produce      json
// @Param        start  query  string  true  "YYYY-MM-DD (incluido)"
// @Param        end    query  string  true  "YYYY-MM-DD (excluido)"
// @Success      200    {object}  dto.WeekdayRankingResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/weekdays [get]
func (h *ReportHandler) Weekdays(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	ranking, err := h.uc.RankWeekdays(c.UserContext(), start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(reporting.ToWeekdayRankingResponse(start, end, ranking))
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Security     BasicAuth
// @Produce      application/pdf
// @Param        month  query  int  true  "1-12"
// @Param        year   query  int  true  "Año"
// @Success      200
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly.pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	month, year := c.QueryInt("month"), c.QueryInt("year")
	if year <= 0 {
		return writeError(c, fmt.Errorf("%w: year es obligatorio", domain.ErrValidation))
	}
	out, err := h.uc.MonthlyPDF(c.UserContext(), month, year)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="relatorio-%04d-%02d.pdf"`, year, month))
	return c.Send(out)
}

func dateRange(c *fiber.Ctx) (start, end time.Time, err error) {
	if start, err = dto.ParseDate(c.Query("start")); err != nil {
		return
	}
	if end, err = dto.ParseDate(c.Query("end")); err != nil {
		return
	}
	if !end.After(start) {
		err = fmt.Errorf("%w: end debe ser posterior a start", domain.ErrInvalidArgument)
	}
	return
}
