package repository

import (
	"sync"

	"inka-simulator/domain"
)

// MemoryStore es la implementación en memoria de los repositorios,
// usada en desarrollo y en los tests.
type MemoryStore struct {
	mu          sync.Mutex
	credits     []domain.LoanSimulationResult
	investments []domain.InvestmentProjectionResult
	reminders   []domain.Reminder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveCredit(input domain.LoanSimulationInput, result *domain.LoanSimulationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits = append(s.credits, *result)
	return nil
}

func (s *MemoryStore) SaveInvestment(input domain.InvestmentSimulationInput, result *domain.InvestmentProjectionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investments = append(s.investments, *result)
	return nil
}

func (s *MemoryStore) Add(r domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, r)
	return nil
}

func (s *MemoryStore) List() ([]domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out, nil
}

// CreditCount devuelve cuántas simulaciones de crédito se guardaron (para tests).
func (s *MemoryStore) CreditCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.credits)
}
