package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanSimulationInput son los parámetros de una simulación de crédito.
// MonthlyRate es la tasa mensual nominal como fracción (0.02 = 2%).
type LoanSimulationInput struct {
	Principal        decimal.Decimal
	MonthlyRate      decimal.Decimal
	TermMonths       int
	DisbursementDate time.Time
	PaymentDay       int
}

// AmortizationInstallment es una cuota del cronograma de pagos.
type AmortizationInstallment struct {
	InstallmentNumber int             `json:"installment_number"`
	DueDate           time.Time       `json:"due_date"`
	DaysInPeriod      int             `json:"days_in_period"`
	PrincipalPortion  decimal.Decimal `json:"principal_portion"`
	InterestPortion   decimal.Decimal `json:"interest_portion"`
	FeePortion        decimal.Decimal `json:"fee_portion"`
	BaseInstallment   decimal.Decimal `json:"base_installment"`
	SavingsPortion    decimal.Decimal `json:"savings_portion"`
	TotalInstallment  decimal.Decimal `json:"total_installment"`
	RemainingBalance  decimal.Decimal `json:"remaining_balance"`
}

// LoanSimulationResult es el cronograma completo con sus totales.
type LoanSimulationResult struct {
	TotalAdministrativeFee decimal.Decimal           `json:"total_administrative_fee"`
	TotalInterest          decimal.Decimal           `json:"total_interest"`
	TotalSavings           decimal.Decimal           `json:"total_savings"`
	BaseInstallmentAmount  decimal.Decimal           `json:"base_installment_amount"`
	InstallmentWithSavings decimal.Decimal           `json:"installment_with_savings"`
	DisbursementDate       time.Time                 `json:"disbursement_date"`
	MaturityDate           time.Time                 `json:"maturity_date"`
	Installments           []AmortizationInstallment `json:"installments"`
}
