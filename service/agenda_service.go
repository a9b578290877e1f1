package service

import (
	"time"

	"github.com/google/uuid"

	"inka-simulator/agenda"
	"inka-simulator/domain"
	"inka-simulator/repository"
)

type AgendaService struct {
	reminders  repository.ReminderRepository
	cycleStart time.Time
}

// NewAgendaService crea el servicio de agenda. cycleStart es el inicio del
// ciclo de aportes de la cooperativa.
func NewAgendaService(reminders repository.ReminderRepository, cycleStart time.Time) *AgendaService {
	return &AgendaService{reminders: reminders, cycleStart: cycleStart}
}

var validRecurrences = map[domain.Recurrence]bool{
	domain.RecurrenceNone:    true,
	domain.RecurrenceWeekly:  true,
	domain.RecurrenceMonthly: true,
	domain.RecurrenceYearly:  true,
}

// CreateReminder registra un recordatorio nuevo.
func (s *AgendaService) CreateReminder(title, notes string, dueDate time.Time, recurrence domain.Recurrence) (domain.Reminder, error) {
	if title == "" {
		return domain.Reminder{}, domain.NewInvalidInput("title", "título requerido")
	}
	if dueDate.IsZero() {
		return domain.Reminder{}, domain.NewInvalidInput("due_date", "fecha requerida")
	}
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}
	if !validRecurrences[recurrence] {
		return domain.Reminder{}, domain.NewInvalidInput("recurrence", "recurrencia inválida")
	}

	r := domain.Reminder{
		ID:         uuid.NewString(),
		Title:      title,
		Notes:      notes,
		DueDate:    dueDate,
		Recurrence: recurrence,
	}
	if err := s.reminders.Add(r); err != nil {
		return domain.Reminder{}, err
	}
	return r, nil
}

// ListReminders devuelve todos los recordatorios registrados.
func (s *AgendaService) ListReminders() ([]domain.Reminder, error) {
	return s.reminders.List()
}

// DueReminders devuelve los recordatorios con ocurrencia exactamente en la fecha dada.
func (s *AgendaService) DueReminders(date time.Time) ([]domain.Reminder, error) {
	all, err := s.reminders.List()
	if err != nil {
		return nil, err
	}
	var due []domain.Reminder
	for _, r := range all {
		if agenda.DueOn(r, date) {
			due = append(due, r)
		}
	}
	return due, nil
}

// WeekFor devuelve la semana de aportes a la que pertenece la fecha.
func (s *AgendaService) WeekFor(date time.Time) (domain.ContributionWeek, error) {
	return agenda.WeekOf(s.cycleStart, date)
}
