package agenda

import (
	"time"

	"inka-simulator/domain"
)

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// monthsAfter avanza meses desde la fecha original conservando su día,
// recortado al último día del mes destino (31 ene + 1 mes = 28/29 feb).
func monthsAfter(origin time.Time, months int) time.Time {
	target := time.Date(origin.Year(), origin.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := origin.Day()
	if last := lastDayOfMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

// NextOccurrence devuelve la próxima fecha del recordatorio estrictamente
// posterior a after. El segundo valor es false si ya no hay ocurrencias.
func NextOccurrence(r domain.Reminder, after time.Time) (time.Time, bool) {
	due := dateOnly(r.DueDate)
	ref := dateOnly(after)
	if due.After(ref) {
		return due, true
	}

	switch r.Recurrence {
	case domain.RecurrenceWeekly:
		days := int(ref.Sub(due)/(24*time.Hour)) + 1
		steps := (days + daysPerWeek - 1) / daysPerWeek
		return due.AddDate(0, 0, steps*daysPerWeek), true
	case domain.RecurrenceMonthly:
		for m := 1; ; m++ {
			if next := monthsAfter(due, m); next.After(ref) {
				return next, true
			}
		}
	case domain.RecurrenceYearly:
		for y := 1; ; y++ {
			if next := monthsAfter(due, y*12); next.After(ref) {
				return next, true
			}
		}
	default:
		return time.Time{}, false
	}
}

// DueOn informa si el recordatorio tiene una ocurrencia exactamente en la fecha dada.
func DueOn(r domain.Reminder, date time.Time) bool {
	d := dateOnly(date)
	if dateOnly(r.DueDate).Equal(d) {
		return true
	}
	next, ok := NextOccurrence(r, d.AddDate(0, 0, -1))
	return ok && next.Equal(d)
}
