package repository

import "inka-simulator/domain"

// SimulationRepository guarda el historial de simulaciones realizadas.
// El guardado es best-effort: un fallo no invalida la simulación.
type SimulationRepository interface {
	SaveCredit(input domain.LoanSimulationInput, result *domain.LoanSimulationResult) error
	SaveInvestment(input domain.InvestmentSimulationInput, result *domain.InvestmentProjectionResult) error
}

// ReminderRepository administra los recordatorios de agenda.
type ReminderRepository interface {
	Add(r domain.Reminder) error
	List() ([]domain.Reminder, error)
}
