package simulation

import (
	"github.com/shopspring/decimal"

	"inka-simulator/domain"
)

// Tarifario de gastos administrativos: porcentaje único sobre el capital, por tramos.
var (
	feeTierMedium = decimal.NewFromInt(5000)
	feeTierLarge  = decimal.NewFromInt(20000)
	feeRateSmall  = decimal.NewFromFloat(0.038)
	feeRateMedium = decimal.NewFromFloat(0.023)
	feeRateLarge  = decimal.NewFromFloat(0.018)

	savingsRate   = decimal.NewFromFloat(0.10)
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// AdministrativeFee calcula el gasto administrativo único según el tramo del capital.
func AdministrativeFee(principal decimal.Decimal) decimal.Decimal {
	rate := feeRateLarge
	switch {
	case principal.LessThan(feeTierMedium):
		rate = feeRateSmall
	case principal.LessThan(feeTierLarge):
		rate = feeRateMedium
	}
	return principal.Mul(rate).Round(2)
}

func validateCredit(in domain.LoanSimulationInput) error {
	if !in.Principal.IsPositive() {
		return domain.NewInvalidInput("principal", "debe ser mayor a cero")
	}
	if in.MonthlyRate.IsNegative() {
		return domain.NewInvalidInput("monthly_rate", "no puede ser negativa")
	}
	if in.TermMonths <= 0 {
		return domain.NewInvalidInput("term_months", "debe ser mayor a cero")
	}
	if in.DisbursementDate.IsZero() {
		return domain.NewInvalidInput("disbursement_date", "fecha requerida")
	}
	if in.PaymentDay < 1 || in.PaymentDay > 31 {
		return domain.NewInvalidInput("payment_day", "debe estar entre 1 y 31")
	}
	return nil
}

// CreditSchedule genera el cronograma de amortización de un crédito.
//
// El interés total se calcula a tasa diaria simple sobre los días calendario entre
// desembolso y vencimiento, y se reparte entre cuotas con pesos descendentes
// (n, n-1, ..., 1). La cuota base se redondea hacia arriba a la unidad; la última
// cuota absorbe todos los residuos de redondeo (capital, interés, gasto y ahorro)
// para que el saldo cierre exactamente en cero.
func CreditSchedule(in domain.LoanSimulationInput) (*domain.LoanSimulationResult, error) {
	if err := validateCredit(in); err != nil {
		return nil, err
	}

	disbursement := dateOnly(in.DisbursementDate)
	n := in.TermMonths
	term := decimal.NewFromInt(int64(n))

	fee := AdministrativeFee(in.Principal)

	base := anchorDate(disbursement, in.PaymentDay)
	maturity := dueDateAt(base, in.PaymentDay, n)
	totalDays := daysBetween(disbursement, maturity)

	dailyRate := in.MonthlyRate.Mul(monthsPerYear).Div(daysPerYear)
	totalInterest := in.Principal.Mul(dailyRate).Mul(decimal.NewFromInt(int64(totalDays))).Round(2)

	totalToRepay := in.Principal.Add(totalInterest).Add(fee)
	baseInstallment := totalToRepay.Div(term).Ceil()

	totalSavings := in.Principal.Add(totalInterest).Mul(savingsRate).Round(2)
	savingsPerInstallment := totalSavings.Div(term).Ceil()
	installmentWithSavings := baseInstallment.Add(savingsPerInstallment)

	sumWeights := decimal.NewFromInt(int64(n) * int64(n+1) / 2)
	feePerInstallment := fee.Div(term).Round(2)
	priorCount := decimal.NewFromInt(int64(n - 1))

	installments := make([]domain.AmortizationInstallment, 0, n)
	balance := in.Principal
	accruedInterest := decimal.Zero
	previousDate := disbursement

	for i := 1; i <= n; i++ {
		dueDate := dueDateAt(base, in.PaymentDay, i)
		days := daysBetween(previousDate, dueDate)

		var interest, feePortion, principalPortion, installment, savings decimal.Decimal
		if i < n {
			weight := decimal.NewFromInt(int64(n - i + 1))
			interest = totalInterest.Mul(weight).Div(sumWeights).Round(2)
			feePortion = feePerInstallment
			principalPortion = baseInstallment.Sub(interest).Sub(feePortion)
			// La cuota base redondeada hacia arriba puede sobrecobrar capital
			// (capital pequeño a plazo largo): el capital por cuota nunca
			// excede el saldo pendiente.
			if principalPortion.GreaterThan(balance) {
				principalPortion = balance
			}
			installment = principalPortion.Add(interest).Add(feePortion)
			savings = savingsPerInstallment
		} else {
			// Última cuota: cancela el saldo exacto y absorbe los residuos.
			feePortion = fee.Sub(feePerInstallment.Mul(priorCount))
			principalPortion = balance
			interest = totalInterest.Sub(accruedInterest)
			installment = principalPortion.Add(interest).Add(feePortion)
			savings = totalSavings.Sub(savingsPerInstallment.Mul(priorCount))
		}

		balance = balance.Sub(principalPortion)
		accruedInterest = accruedInterest.Add(interest)

		installments = append(installments, domain.AmortizationInstallment{
			InstallmentNumber: i,
			DueDate:           dueDate,
			DaysInPeriod:      days,
			PrincipalPortion:  principalPortion,
			InterestPortion:   interest,
			FeePortion:        feePortion,
			BaseInstallment:   installment,
			SavingsPortion:    savings,
			TotalInstallment:  installment.Add(savings),
			RemainingBalance:  balance,
		})
		previousDate = dueDate
	}

	return &domain.LoanSimulationResult{
		TotalAdministrativeFee: fee,
		TotalInterest:          totalInterest,
		TotalSavings:           totalSavings,
		BaseInstallmentAmount:  baseInstallment,
		InstallmentWithSavings: installmentWithSavings,
		DisbursementDate:       disbursement,
		MaturityDate:           maturity,
		Installments:           installments,
	}, nil
}
