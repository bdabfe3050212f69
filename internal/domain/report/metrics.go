// Package report agrega métricas financieras a partir de ventas registradas.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/chopp-api/internal/domain/entity"
)

// Metrics resumen financiero de un conjunto de ventas. Montos redondeados a 2 decimales.
type Metrics struct {
	GrossRevenue   decimal.Decimal
	NetRevenue     decimal.Decimal
	Average        decimal.Decimal
	StaffExpense   decimal.Decimal
	CupsExpense    decimal.Decimal
	InvoiceExpense decimal.Decimal
	Days           int // cantidad de registros de venta, no de días distintos
}

// TotalExpenses suma de los tres gastos ya redondeados.
func (m Metrics) TotalExpenses() decimal.Decimal {
	return m.StaffExpense.Add(m.CupsExpense).Add(m.InvoiceExpense)
}

// ComputeMetrics es total: con entrada vacía devuelve todos los campos en cero.
// El redondeo se aplica solo al final; el orden de las ventas no altera el resultado.
func ComputeMetrics(sales []*entity.Sale) Metrics {
	gross := decimal.Zero
	staff := decimal.Zero
	cups := decimal.Zero
	invoice := decimal.Zero
	count := 0
	for _, s := range sales {
		if s == nil {
			continue
		}
		count++
		gross = gross.Add(s.Total)
		staff = staff.Add(orZero(s.StaffCost))
		cups = cups.Add(orZero(s.CupsCost))
		invoice = invoice.Add(orZero(s.InvoiceCost))
	}
	net := gross.Sub(staff.Add(cups).Add(invoice))
	avg := decimal.Zero
	if count > 0 {
		avg = gross.Div(decimal.NewFromInt(int64(count)))
	}
	return Metrics{
		GrossRevenue:   gross.Round(2),
		NetRevenue:     net.Round(2),
		Average:        avg.Round(2),
		StaffExpense:   staff.Round(2),
		CupsExpense:    cups.Round(2),
		InvoiceExpense: invoice.Round(2),
		Days:           count,
	}
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

// WeekdayTotal ingreso acumulado de un día de la semana.
type WeekdayTotal struct {
	Weekday string
	Total   decimal.Decimal
}

// RankWeekdays agrupa los totales por día de la semana y ordena de mayor a menor.
// Empates: gana el día que apareció primero en el recorrido (orden estable).
// Devuelve nil si no hay ventas.
func RankWeekdays(sales []*entity.Sale) []WeekdayTotal {
	var ranking []WeekdayTotal
	index := make(map[string]int)
	for _, s := range sales {
		if s == nil {
			continue
		}
		i, ok := index[s.Weekday]
		if !ok {
			i = len(ranking)
			index[s.Weekday] = i
			ranking = append(ranking, WeekdayTotal{Weekday: s.Weekday, Total: decimal.Zero})
		}
		ranking[i].Total = ranking[i].Total.Add(s.Total)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total.GreaterThan(ranking[j].Total)
	})
	return ranking
}
