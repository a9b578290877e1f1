package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentSimulationInput son los parámetros de una proyección de inversión.
// AnnualRate es la tasa anual nominal como fracción (0.10 = 10%).
type InvestmentSimulationInput struct {
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	TermMonths int
	StartDate  time.Time
}

// InvestmentProjectionEntry es el devengo de interés de un mes.
type InvestmentProjectionEntry struct {
	MonthNumber     int             `json:"month_number"`
	DueDate         time.Time       `json:"due_date"`
	MonthlyInterest decimal.Decimal `json:"monthly_interest"`
	CumulativeValue decimal.Decimal `json:"cumulative_value"`
}

// InvestmentProjectionResult es la proyección completa.
type InvestmentProjectionResult struct {
	TotalInterest decimal.Decimal             `json:"total_interest"`
	MaturityValue decimal.Decimal             `json:"maturity_value"`
	MaturityDate  time.Time                   `json:"maturity_date"`
	Entries       []InvestmentProjectionEntry `json:"entries"`
}
