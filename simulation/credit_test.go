package simulation

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"inka-simulator/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func creditInput() domain.LoanSimulationInput {
	return domain.LoanSimulationInput{
		Principal:        dec("1000"),
		MonthlyRate:      dec("0.02"),
		TermMonths:       12,
		DisbursementDate: date(2025, time.January, 15),
		PaymentDay:       5,
	}
}

func TestCreditSchedule_ExampleScenario(t *testing.T) {

	result, err := CreditSchedule(creditInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.TotalAdministrativeFee.Equal(dec("38")) {
		t.Errorf("expected fee 38.00, got %s", result.TotalAdministrativeFee)
	}

	// Desembolso 15-ene, día de pago 5: la base se corre al 05-feb-2025 y el
	// vencimiento al 05-feb-2026, 386 días calendario.
	if !result.MaturityDate.Equal(date(2026, time.February, 5)) {
		t.Errorf("expected maturity 2026-02-05, got %s", result.MaturityDate)
	}
	// interés = 1000 × (0.24/365) × 386
	if !result.TotalInterest.Equal(dec("253.81")) {
		t.Errorf("expected total interest 253.81, got %s", result.TotalInterest)
	}
	// ceil((1000+253.81+38)/12) = ceil(107.65) = 108
	if !result.BaseInstallmentAmount.Equal(dec("108")) {
		t.Errorf("expected base installment 108, got %s", result.BaseInstallmentAmount)
	}
	// ahorro = (1000+253.81)×0.10 = 125.38; ceil(125.38/12) = 11
	if !result.TotalSavings.Equal(dec("125.38")) {
		t.Errorf("expected total savings 125.38, got %s", result.TotalSavings)
	}
	if !result.InstallmentWithSavings.Equal(dec("119")) {
		t.Errorf("expected installment with savings 119, got %s", result.InstallmentWithSavings)
	}

	if len(result.Installments) != 12 {
		t.Fatalf("expected 12 installments, got %d", len(result.Installments))
	}

	first := result.Installments[0]
	if !first.DueDate.Equal(date(2025, time.March, 5)) {
		t.Errorf("expected first due date 2025-03-05, got %s", first.DueDate)
	}
	if first.DaysInPeriod != 49 {
		t.Errorf("expected 49 days in first period, got %d", first.DaysInPeriod)
	}
	// peso 12/78 del interés total
	if !first.InterestPortion.Equal(dec("39.05")) {
		t.Errorf("expected first interest 39.05, got %s", first.InterestPortion)
	}
	if !first.FeePortion.Equal(dec("3.17")) {
		t.Errorf("expected first fee portion 3.17, got %s", first.FeePortion)
	}
	if !first.PrincipalPortion.Equal(dec("65.78")) {
		t.Errorf("expected first principal 65.78, got %s", first.PrincipalPortion)
	}
	if !first.SavingsPortion.Equal(dec("11")) {
		t.Errorf("expected first savings 11, got %s", first.SavingsPortion)
	}
	if !first.TotalInstallment.Equal(dec("119")) {
		t.Errorf("expected first total 119, got %s", first.TotalInstallment)
	}

	// La última cuota absorbe todos los residuos.
	last := result.Installments[11]
	if !last.PrincipalPortion.Equal(dec("97.43")) {
		t.Errorf("expected last principal 97.43, got %s", last.PrincipalPortion)
	}
	if !last.InterestPortion.Equal(dec("3.25")) {
		t.Errorf("expected last interest 3.25, got %s", last.InterestPortion)
	}
	if !last.FeePortion.Equal(dec("3.13")) {
		t.Errorf("expected last fee 3.13, got %s", last.FeePortion)
	}
	if !last.SavingsPortion.Equal(dec("4.38")) {
		t.Errorf("expected last savings 4.38, got %s", last.SavingsPortion)
	}
	if !last.RemainingBalance.IsZero() {
		t.Errorf("expected final balance 0, got %s", last.RemainingBalance)
	}
}

func TestCreditSchedule_Conservation(t *testing.T) {
	inputs := []domain.LoanSimulationInput{
		creditInput(),
		{
			Principal:        dec("7500"),
			MonthlyRate:      dec("0.015"),
			TermMonths:       24,
			DisbursementDate: date(2025, time.March, 28),
			PaymentDay:       10,
		},
		{
			Principal:        dec("25000"),
			MonthlyRate:      dec("0.025"),
			TermMonths:       36,
			DisbursementDate: date(2024, time.December, 1),
			PaymentDay:       31,
		},
		{
			Principal:        dec("333.33"),
			MonthlyRate:      dec("0"),
			TermMonths:       5,
			DisbursementDate: date(2025, time.June, 30),
			PaymentDay:       15,
		},
		{
			// Cuota base redondeada hacia arriba que sobrecobra: el saldo se
			// agota antes de la última cuota.
			Principal:        dec("100"),
			MonthlyRate:      dec("0"),
			TermMonths:       60,
			DisbursementDate: date(2025, time.January, 15),
			PaymentDay:       5,
		},
	}

	for _, in := range inputs {
		result, err := CreditSchedule(in)
		if err != nil {
			t.Fatalf("unexpected error for principal %s: %v", in.Principal, err)
		}

		sumPrincipal := decimal.Zero
		sumInterest := decimal.Zero
		sumFee := decimal.Zero
		sumSavings := decimal.Zero
		for _, inst := range result.Installments {
			sumPrincipal = sumPrincipal.Add(inst.PrincipalPortion)
			sumInterest = sumInterest.Add(inst.InterestPortion)
			sumFee = sumFee.Add(inst.FeePortion)
			sumSavings = sumSavings.Add(inst.SavingsPortion)
		}

		if !sumPrincipal.Equal(in.Principal) {
			t.Errorf("principal %s: sum of principal portions = %s", in.Principal, sumPrincipal)
		}
		if !sumInterest.Equal(result.TotalInterest) {
			t.Errorf("principal %s: sum of interest = %s, want %s", in.Principal, sumInterest, result.TotalInterest)
		}
		if !sumFee.Equal(result.TotalAdministrativeFee) {
			t.Errorf("principal %s: sum of fees = %s, want %s", in.Principal, sumFee, result.TotalAdministrativeFee)
		}
		if !sumSavings.Equal(result.TotalSavings) {
			t.Errorf("principal %s: sum of savings = %s, want %s", in.Principal, sumSavings, result.TotalSavings)
		}

		last := result.Installments[len(result.Installments)-1]
		if !last.RemainingBalance.IsZero() {
			t.Errorf("principal %s: final balance = %s", in.Principal, last.RemainingBalance)
		}
	}
}

func TestCreditSchedule_PrincipalCappedAtBalance(t *testing.T) {
	// Capital pequeño a plazo largo: la cuota base de 2 excede lo necesario y
	// el saldo llega a cero en la cuota 52; las cuotas posteriores no
	// amortizan capital.
	in := domain.LoanSimulationInput{
		Principal:        dec("100"),
		MonthlyRate:      dec("0"),
		TermMonths:       60,
		DisbursementDate: date(2025, time.January, 15),
		PaymentDay:       5,
	}

	result, err := CreditSchedule(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := in.Principal
	sumPrincipal := decimal.Zero
	exhausted := false
	for _, inst := range result.Installments {
		if inst.RemainingBalance.IsNegative() {
			t.Fatalf("installment %d: negative balance %s", inst.InstallmentNumber, inst.RemainingBalance)
		}
		if inst.PrincipalPortion.GreaterThan(prev) {
			t.Errorf("installment %d: principal %s exceeds prior balance %s",
				inst.InstallmentNumber, inst.PrincipalPortion, prev)
		}
		if !inst.RemainingBalance.Equal(prev.Sub(inst.PrincipalPortion)) {
			t.Errorf("installment %d: balance %s, want %s",
				inst.InstallmentNumber, inst.RemainingBalance, prev.Sub(inst.PrincipalPortion))
		}
		if exhausted && !inst.PrincipalPortion.IsZero() {
			t.Errorf("installment %d: principal %s after balance reached zero",
				inst.InstallmentNumber, inst.PrincipalPortion)
		}
		if inst.RemainingBalance.IsZero() {
			exhausted = true
		}
		prev = inst.RemainingBalance
		sumPrincipal = sumPrincipal.Add(inst.PrincipalPortion)
	}

	if !sumPrincipal.Equal(in.Principal) {
		t.Errorf("sum of principal portions = %s, want %s", sumPrincipal, in.Principal)
	}
	if !prev.IsZero() {
		t.Errorf("final balance = %s", prev)
	}
}

func TestCreditSchedule_MonotonicDueDates(t *testing.T) {

	result, err := CreditSchedule(creditInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := result.DisbursementDate
	for _, inst := range result.Installments {
		if !inst.DueDate.After(prev) {
			t.Errorf("installment %d: due date %s not after %s", inst.InstallmentNumber, inst.DueDate, prev)
		}
		if inst.DueDate.Day() != 5 {
			t.Errorf("installment %d: due day %d, want 5", inst.InstallmentNumber, inst.DueDate.Day())
		}
		if got := daysBetween(prev, inst.DueDate); got != inst.DaysInPeriod {
			t.Errorf("installment %d: days in period %d, want %d", inst.InstallmentNumber, inst.DaysInPeriod, got)
		}
		prev = inst.DueDate
	}
}

func TestCreditSchedule_PaymentDayClamped(t *testing.T) {

	in := creditInput()
	in.PaymentDay = 31
	result, err := CreditSchedule(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base 31-ene-2025; la primera cuota cae al fin de febrero
	first := result.Installments[0]
	if !first.DueDate.Equal(date(2025, time.February, 28)) {
		t.Errorf("expected 2025-02-28, got %s", first.DueDate)
	}
	// y marzo vuelve al día 31
	second := result.Installments[1]
	if !second.DueDate.Equal(date(2025, time.March, 31)) {
		t.Errorf("expected 2025-03-31, got %s", second.DueDate)
	}
}

func TestCreditSchedule_InterestFrontLoading(t *testing.T) {

	result, err := CreditSchedule(creditInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(result.Installments)
	first := result.Installments[0].InterestPortion
	// Se excluye la última cuota: su interés es el residuo del redondeo.
	for i := 1; i < n-1; i++ {
		if result.Installments[i].InterestPortion.GreaterThan(first) {
			t.Errorf("installment %d interest %s exceeds first %s",
				i+1, result.Installments[i].InterestPortion, first)
		}
	}
}

func TestCreditSchedule_CeilingRounding(t *testing.T) {

	result, err := CreditSchedule(creditInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totalToRepay := dec("1000").Add(result.TotalInterest).Add(result.TotalAdministrativeFee)
	unrounded := totalToRepay.Div(decimal.NewFromInt(12))
	if result.BaseInstallmentAmount.LessThan(unrounded) {
		t.Errorf("base installment %s below unrounded %s", result.BaseInstallmentAmount, unrounded)
	}
	if !result.BaseInstallmentAmount.Equal(unrounded.Ceil()) {
		t.Errorf("base installment %s, want ceil %s", result.BaseInstallmentAmount, unrounded.Ceil())
	}
}

func TestCreditSchedule_Idempotence(t *testing.T) {

	a, err := CreditSchedule(creditInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := CreditSchedule(creditInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	if !bytes.Equal(aJSON, bJSON) {
		t.Error("expected identical results for identical input")
	}
}

func TestCreditSchedule_SingleInstallment(t *testing.T) {

	in := creditInput()
	in.TermMonths = 1
	result, err := CreditSchedule(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Installments) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(result.Installments))
	}
	only := result.Installments[0]
	if !only.PrincipalPortion.Equal(dec("1000")) {
		t.Errorf("expected principal 1000, got %s", only.PrincipalPortion)
	}
	if !only.FeePortion.Equal(result.TotalAdministrativeFee) {
		t.Errorf("expected fee %s, got %s", result.TotalAdministrativeFee, only.FeePortion)
	}
	if !only.InterestPortion.Equal(result.TotalInterest) {
		t.Errorf("expected interest %s, got %s", result.TotalInterest, only.InterestPortion)
	}
	if !only.RemainingBalance.IsZero() {
		t.Errorf("expected balance 0, got %s", only.RemainingBalance)
	}
}

func TestAdministrativeFee_Tiers(t *testing.T) {
	tests := []struct {
		principal string
		want      string
	}{
		{"1000", "38"},        // < 5000 → 3.8%
		{"4999.99", "190"},    // 4999.99 × 0.038
		{"5000", "115"},       // tramo medio → 2.3%
		{"19999", "459.98"},   // 19999 × 0.023
		{"20000", "360"},      // tramo alto → 1.8%
		{"100000", "1800"},
	}

	for _, tt := range tests {
		got := AdministrativeFee(dec(tt.principal))
		if !got.Equal(dec(tt.want)) {
			t.Errorf("AdministrativeFee(%s) = %s, want %s", tt.principal, got, tt.want)
		}
	}
}

func TestCreditSchedule_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.LoanSimulationInput)
		wantField string
	}{
		{
			name:      "principal cero",
			mutate:    func(in *domain.LoanSimulationInput) { in.Principal = decimal.Zero },
			wantField: "principal",
		},
		{
			name:      "principal negativo",
			mutate:    func(in *domain.LoanSimulationInput) { in.Principal = dec("-100") },
			wantField: "principal",
		},
		{
			name:      "tasa negativa",
			mutate:    func(in *domain.LoanSimulationInput) { in.MonthlyRate = dec("-0.01") },
			wantField: "monthly_rate",
		},
		{
			name:      "plazo cero",
			mutate:    func(in *domain.LoanSimulationInput) { in.TermMonths = 0 },
			wantField: "term_months",
		},
		{
			name:      "plazo negativo",
			mutate:    func(in *domain.LoanSimulationInput) { in.TermMonths = -3 },
			wantField: "term_months",
		},
		{
			name:      "sin fecha de desembolso",
			mutate:    func(in *domain.LoanSimulationInput) { in.DisbursementDate = time.Time{} },
			wantField: "disbursement_date",
		},
		{
			name:      "día de pago fuera de rango",
			mutate:    func(in *domain.LoanSimulationInput) { in.PaymentDay = 32 },
			wantField: "payment_day",
		},
		{
			name:      "día de pago cero",
			mutate:    func(in *domain.LoanSimulationInput) { in.PaymentDay = 0 },
			wantField: "payment_day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := creditInput()
			tt.mutate(&in)

			result, err := CreditSchedule(in)
			if result != nil {
				t.Error("expected no result on invalid input")
			}
			var invalid *domain.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, invalid.Field)
			}
		})
	}
}
