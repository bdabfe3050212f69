package dto

import "github.com/shopspring/decimal"

// MetricsResponse resumen financiero de un rango de fechas [start, end).
type MetricsResponse struct {
	Start          string          `json:"start"`
	End            string          `json:"end"`
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`
	NetRevenue     decimal.Decimal `json:"net_revenue"`
	Average        decimal.Decimal `json:"average"`
	StaffExpense   decimal.Decimal `json:"staff_expense"`
	CupsExpense    decimal.Decimal `json:"cups_expense"`
	InvoiceExpense decimal.Decimal `json:"invoice_expense"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	Days           int             `json:"days"`
}

// WeekdayTotalResponse ingreso acumulado por día de la semana.
type WeekdayTotalResponse struct {
	Position int             `json:"position"`
	Weekday  string          `json:"weekday"`
	Total    decimal.Decimal `json:"total"`
}

// WeekdayRankingResponse ranking de días de la semana.
type WeekdayRankingResponse struct {
	Start string                 `json:"start"`
	End   string                 `json:"end"`
	Items []WeekdayTotalResponse `json:"items"`
}
