package service

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"inka-simulator/domain"
	"inka-simulator/simulation"
)

type TermRecommendationService struct {
	limits Limits
}

func NewTermRecommendationService(limits Limits) *TermRecommendationService {
	return &TermRecommendationService{limits: limits}
}

// RecommendTerm evalúa cada plazo del rango con el simulador de crédito y
// recomienda el óptimo según la preferencia del socio.
func (s *TermRecommendationService) RecommendTerm(
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	// Validaciones
	if !input.Principal.IsPositive() {
		return domain.TermRecommendationResult{}, errors.New("monto inválido")
	}
	if input.MinTermMonths <= 0 || input.MaxTermMonths <= 0 {
		return domain.TermRecommendationResult{}, errors.New("plazos inválidos")
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return domain.TermRecommendationResult{}, errors.New("plazo mínimo mayor que máximo")
	}
	if input.MaxTermMonths > s.limits.MaxTermMonths {
		return domain.TermRecommendationResult{}, fmt.Errorf("plazo máximo excede el límite de %d meses", s.limits.MaxTermMonths)
	}
	// Acotar el rango para evitar barridos costosos
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return domain.TermRecommendationResult{}, fmt.Errorf("rango de plazos excede el máximo de %d meses", MaxTermRangeMonths)
	}
	if !input.MaxInstallment.IsPositive() {
		return domain.TermRecommendationResult{}, errors.New("cuota máxima inválida")
	}

	preferences := map[string]bool{
		PreferenceMinimizeInterest: true,
		PreferenceMinimizePayment:  true,
		PreferenceBalanced:         true,
	}
	if !preferences[input.Preference] {
		return domain.TermRecommendationResult{}, errors.New("preferencia inválida")
	}

	type candidate struct {
		term   int
		result *domain.LoanSimulationResult
	}
	candidates := []candidate{}

	// Simular cada plazo del rango
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		result, err := simulation.CreditSchedule(domain.LoanSimulationInput{
			Principal:        input.Principal,
			MonthlyRate:      input.MonthlyRate,
			TermMonths:       term,
			DisbursementDate: input.DisbursementDate,
			PaymentDay:       input.PaymentDay,
		})
		if err != nil {
			log.Printf("Warning: failed to simulate term %d: %v", term, err)
			continue
		}

		// Filtrar por la cuota que el socio puede pagar (incluye ahorro)
		if result.InstallmentWithSavings.GreaterThan(input.MaxInstallment) {
			continue
		}
		candidates = append(candidates, candidate{term: term, result: result})
	}

	if len(candidates) == 0 {
		return domain.TermRecommendationResult{}, errors.New("ningún plazo del rango cumple con la cuota máxima indicada")
	}

	// Normalizar interés y cuota dentro del rango evaluado
	minInterest, _ := candidates[0].result.TotalInterest.Float64()
	maxInterest := minInterest
	minPayment, _ := candidates[0].result.InstallmentWithSavings.Float64()
	maxPayment := minPayment
	for _, c := range candidates[1:] {
		if v, _ := c.result.TotalInterest.Float64(); v < minInterest {
			minInterest = v
		} else if v > maxInterest {
			maxInterest = v
		}
		if v, _ := c.result.InstallmentWithSavings.Float64(); v < minPayment {
			minPayment = v
		} else if v > maxPayment {
			maxPayment = v
		}
	}

	recommendations := make([]domain.TermRecommendation, 0, len(candidates))
	for _, c := range candidates {
		interest, _ := c.result.TotalInterest.Float64()
		payment, _ := c.result.InstallmentWithSavings.Float64()
		score := s.score(input.Preference, normalize(interest, minInterest, maxInterest), normalize(payment, minPayment, maxPayment))

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:             c.term,
			InstallmentWithSavings: c.result.InstallmentWithSavings,
			TotalInterest:          c.result.TotalInterest,
			TotalAdministrativeFee: c.result.TotalAdministrativeFee,
			Score:                  score,
			Reason: fmt.Sprintf("cuota de %s con %s de interés total en %d meses",
				c.result.InstallmentWithSavings, c.result.TotalInterest, c.term),
		})
	}

	// Ordenar por score descendente; a igual score gana el plazo más corto
	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Score != recommendations[j].Score {
			return recommendations[i].Score > recommendations[j].Score
		}
		return recommendations[i].TermMonths < recommendations[j].TermMonths
	})

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

func (s *TermRecommendationService) score(preference string, interestNorm, paymentNorm float64) float64 {
	switch preference {
	case PreferenceMinimizeInterest:
		return 1 - interestNorm
	case PreferenceMinimizePayment:
		return 1 - paymentNorm
	default:
		return 0.5*(1-interestNorm) + 0.5*(1-paymentNorm)
	}
}

func normalize(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (v - min) / (max - min)
}
