package agenda

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"inka-simulator/domain"
	"inka-simulator/metrics"
)

// ReminderSource provee los recordatorios con ocurrencia en una fecha.
type ReminderSource interface {
	DueReminders(date time.Time) ([]domain.Reminder, error)
}

// Scheduler despacha los recordatorios de agenda con un cron diario.
type Scheduler struct {
	Cron   *cron.Cron
	Source ReminderSource
}

func NewScheduler(source ReminderSource) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Source: source,
	}
}

// Register registra la tarea diaria de recordatorios.
func (s *Scheduler) Register(reminderCron string) error {
	if _, err := s.Cron.AddFunc(reminderCron, s.dispatchToday); err != nil {
		return fmt.Errorf("register reminder task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] agenda scheduler iniciado")
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] agenda scheduler detenido")
}

// RunNow despacha los recordatorios de hoy de inmediato (disparo manual).
func (s *Scheduler) RunNow() {
	s.dispatchToday()
}

func (s *Scheduler) dispatchToday() {
	today := time.Now()
	due, err := s.Source.DueReminders(today)
	if err != nil {
		log.Printf("[ERROR] consultar recordatorios: %v", err)
		return
	}
	for _, r := range due {
		log.Printf("[INFO] recordatorio: %s (%s)", r.Title, r.Recurrence)
		metrics.RemindersDispatched.Inc()
	}
}
