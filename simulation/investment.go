package simulation

import (
	"github.com/shopspring/decimal"

	"inka-simulator/domain"
)

func validateInvestment(in domain.InvestmentSimulationInput) error {
	if !in.Principal.IsPositive() {
		return domain.NewInvalidInput("principal", "debe ser mayor a cero")
	}
	if in.AnnualRate.IsNegative() {
		return domain.NewInvalidInput("annual_rate", "no puede ser negativa")
	}
	if in.TermMonths <= 0 {
		return domain.NewInvalidInput("term_months", "debe ser mayor a cero")
	}
	if in.StartDate.IsZero() {
		return domain.NewInvalidInput("start_date", "fecha requerida")
	}
	return nil
}

// InvestmentProjection proyecta el devengo mensual de una inversión a interés
// simple: el interés de cada mes es constante y no capitaliza.
func InvestmentProjection(in domain.InvestmentSimulationInput) (*domain.InvestmentProjectionResult, error) {
	if err := validateInvestment(in); err != nil {
		return nil, err
	}

	start := dateOnly(in.StartDate)
	term := decimal.NewFromInt(int64(in.TermMonths))
	monthlyRate := in.AnnualRate.Div(monthsPerYear)
	monthlyInterest := in.Principal.Mul(monthlyRate)

	totalInterest := monthlyInterest.Mul(term).Round(2)
	maturityValue := in.Principal.Add(totalInterest)
	maturityDate := addMonths(start, in.TermMonths)

	entries := make([]domain.InvestmentProjectionEntry, 0, in.TermMonths)
	for m := 1; m <= in.TermMonths; m++ {
		months := decimal.NewFromInt(int64(m))
		entries = append(entries, domain.InvestmentProjectionEntry{
			MonthNumber:     m,
			DueDate:         addMonths(start, m),
			MonthlyInterest: monthlyInterest.Round(2),
			CumulativeValue: in.Principal.Add(monthlyInterest.Mul(months)).Round(2),
		})
	}

	return &domain.InvestmentProjectionResult{
		TotalInterest: totalInterest,
		MaturityValue: maturityValue,
		MaturityDate:  maturityDate,
		Entries:       entries,
	}, nil
}
