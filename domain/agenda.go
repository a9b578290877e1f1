package domain

import "time"

// Recurrence define cada cuánto se repite un recordatorio de agenda.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
	RecurrenceYearly  Recurrence = "YEARLY"
)

// Reminder es un recordatorio de agenda (asamblea, cierre de aportes, vencimiento).
type Reminder struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Notes      string     `json:"notes,omitempty"`
	DueDate    time.Time  `json:"due_date"`
	Recurrence Recurrence `json:"recurrence"`
}

// ContributionWeek describe una semana de aportes dentro del ciclo de la cooperativa.
type ContributionWeek struct {
	Number int       `json:"number"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}
