// Package agenda implementa la numeración de semanas de aportes y los
// recordatorios recurrentes de la cooperativa.
package agenda

import (
	"time"

	"inka-simulator/domain"
)

const daysPerWeek = 7

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekOf devuelve la semana de aportes a la que pertenece una fecha.
// Las semanas se cuentan desde 1 a partir del inicio del ciclo.
func WeekOf(cycleStart, date time.Time) (domain.ContributionWeek, error) {
	start := dateOnly(cycleStart)
	d := dateOnly(date)
	if d.Before(start) {
		return domain.ContributionWeek{}, domain.NewInvalidInput("date", "anterior al inicio del ciclo")
	}
	days := int(d.Sub(start) / (24 * time.Hour))
	number := days/daysPerWeek + 1
	return WeekRange(start, number), nil
}

// WeekRange devuelve el rango de fechas de la semana indicada del ciclo.
// La semana termina el día anterior al inicio de la siguiente.
func WeekRange(cycleStart time.Time, number int) domain.ContributionWeek {
	start := dateOnly(cycleStart).AddDate(0, 0, (number-1)*daysPerWeek)
	return domain.ContributionWeek{
		Number: number,
		Start:  start,
		End:    start.AddDate(0, 0, daysPerWeek-1),
	}
}
