package simulation

import "time"

const anchorGraceDays = 2

// dateOnly normaliza a medianoche UTC para que las restas de fechas den días exactos.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(t time.Time) int {
	return monthStart(t).AddDate(0, 1, -1).Day()
}

// withDay fija el día del mes, recortando al último día si el mes no lo tiene
// (estilo EDATE, evita la normalización de meses de Go).
func withDay(t time.Time, day int) time.Time {
	if last := lastDayOfMonth(t); day > last {
		day = last
	}
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, time.UTC)
}

// addMonths avanza meses conservando el día de partida, con recorte calendario.
func addMonths(t time.Time, months int) time.Time {
	return withDay(monthStart(t).AddDate(0, months, 0), t.Day())
}

// anchorDate calcula la fecha base de facturación: si el desembolso cae hasta dos
// días después del día de pago, la base queda en el mismo mes; si no, en el siguiente.
func anchorDate(disbursement time.Time, paymentDay int) time.Time {
	if disbursement.Day() <= paymentDay+anchorGraceDays {
		return withDay(disbursement, paymentDay)
	}
	return withDay(monthStart(disbursement).AddDate(0, 1, 0), paymentDay)
}

// dueDateAt devuelve la fecha base desplazada N meses, re-anclada al día de pago.
func dueDateAt(base time.Time, paymentDay, monthsAhead int) time.Time {
	return withDay(monthStart(base).AddDate(0, monthsAhead, 0), paymentDay)
}

// daysBetween cuenta días calendario entre dos fechas normalizadas.
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
