package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TermRecommendationInput pide evaluar un rango de plazos para un crédito.
type TermRecommendationInput struct {
	Principal        decimal.Decimal
	MonthlyRate      decimal.Decimal
	MinTermMonths    int
	MaxTermMonths    int
	MaxInstallment   decimal.Decimal // cuota máxima que el socio puede pagar (con ahorro)
	DisbursementDate time.Time
	PaymentDay       int
	Preference       string // "minimize_interest", "minimize_payment", "balanced"
}

// TermRecommendation es un plazo evaluado con su puntaje.
type TermRecommendation struct {
	TermMonths             int             `json:"term_months"`
	InstallmentWithSavings decimal.Decimal `json:"installment_with_savings"`
	TotalInterest          decimal.Decimal `json:"total_interest"`
	TotalAdministrativeFee decimal.Decimal `json:"total_administrative_fee"`
	Score                  float64         `json:"score"`
	Reason                 string          `json:"reason"`
}

// TermRecommendationResult ordena los plazos evaluados de mejor a peor.
type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommended_term"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
