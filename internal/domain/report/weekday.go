package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var weekdayNames = map[string]string{
	"Monday":    "Segunda-feira",
	"Tuesday":   "Terça-feira",
	"Wednesday": "Quarta-feira",
	"Thursday":  "Quinta-feira",
	"Friday":    "Sexta-feira",
	"Saturday":  "Sábado",
	"Sunday":    "Domingo",
}

// PortugueseWeekday traduce el nombre inglés guardado en la venta.
// Nombres desconocidos se devuelven tal cual.
func PortugueseWeekday(day string) string {
	if pt, ok := weekdayNames[cases.Title(language.English).String(strings.ToLower(day))]; ok {
		return pt
	}
	return day
}
