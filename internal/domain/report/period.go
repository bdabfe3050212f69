package report

import (
	"fmt"
	"time"

	"github.com/jhoicas/chopp-api/internal/domain"
)

// Period intervalo cerrado-abierto [Start, End) en fechas UTC.
type Period struct {
	Start time.Time
	End   time.Time
}

// Month ventana del mes: [día 1, día 1 del mes siguiente). Diciembre cierra en enero del año siguiente.
func Month(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: mes %d", domain.ErrInvalidArgument, month)
	}
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Year ventana del año completo.
func Year(year int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(1, 0, 0)}, nil
}

// Años de calendario válidos: 1 a 9999.
func checkYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: año %d", domain.ErrInvalidArgument, year)
	}
	return nil
}

// PriorMonth mes anterior; enero retrocede a diciembre del año anterior.
func PriorMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}
