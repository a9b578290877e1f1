package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"

	"inka-simulator/domain"
	"inka-simulator/metrics"
	"inka-simulator/repository"
	"inka-simulator/simulation"
	"inka-simulator/tracing"
)

// Limits son los topes de negocio que el servicio aplica antes de simular.
// La validación estructural (montos no positivos, fechas) la hace el simulador.
type Limits struct {
	MaxPrincipal   decimal.Decimal
	MaxTermMonths  int
	MaxMonthlyRate decimal.Decimal
}

type SimulationService struct {
	repo   repository.SimulationRepository
	cache  repository.CacheRepository
	limits Limits
}

// NewSimulationService crea el servicio de simulaciones.
func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	limits Limits,
) *SimulationService {
	return &SimulationService{repo: repo, cache: cache, limits: limits}
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if tracing.Tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracing.Tracer.Start(ctx, name)
}

// SimulateCredit ejecuta la simulación de crédito, con cache y guardado de historial.
func (s *SimulationService) SimulateCredit(
	ctx context.Context,
	input domain.LoanSimulationInput,
) (*domain.LoanSimulationResult, error) {
	ctx, span := startSpan(ctx, "SimulateCredit")
	defer span.End()

	if input.Principal.GreaterThan(s.limits.MaxPrincipal) {
		return nil, fmt.Errorf("monto excede el máximo permitido de %s", s.limits.MaxPrincipal)
	}
	if input.TermMonths > s.limits.MaxTermMonths {
		return nil, fmt.Errorf("plazo excede el máximo permitido de %d meses", s.limits.MaxTermMonths)
	}
	if input.MonthlyRate.GreaterThan(s.limits.MaxMonthlyRate) {
		return nil, fmt.Errorf("tasa excede el máximo permitido de %s", s.limits.MaxMonthlyRate)
	}

	key := creditCacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.LoanSimulationResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			metrics.CacheHits.WithLabelValues("credit", "hit").Inc()
			return &result, nil
		}
	}
	metrics.CacheHits.WithLabelValues("credit", "miss").Inc()

	result, err := simulation.CreditSchedule(input)
	if err != nil {
		metrics.Simulations.WithLabelValues("credit", "error").Inc()
		return nil, err
	}
	metrics.Simulations.WithLabelValues("credit", "ok").Inc()

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(payload), SimulationCacheTTL); err != nil {
			log.Printf("Warning: failed to cache credit simulation: %v", err)
		}
	}

	// Guardar el historial (no crítico si falla)
	if err := s.repo.SaveCredit(input, result); err != nil {
		log.Printf("Warning: failed to save credit simulation: %v", err)
	}

	return result, nil
}

// SimulateInvestment ejecuta la proyección de inversión, con cache y guardado de historial.
func (s *SimulationService) SimulateInvestment(
	ctx context.Context,
	input domain.InvestmentSimulationInput,
) (*domain.InvestmentProjectionResult, error) {
	ctx, span := startSpan(ctx, "SimulateInvestment")
	defer span.End()

	if input.Principal.GreaterThan(s.limits.MaxPrincipal) {
		return nil, fmt.Errorf("monto excede el máximo permitido de %s", s.limits.MaxPrincipal)
	}
	if input.TermMonths > s.limits.MaxTermMonths {
		return nil, fmt.Errorf("plazo excede el máximo permitido de %d meses", s.limits.MaxTermMonths)
	}

	key := investmentCacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.InvestmentProjectionResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			metrics.CacheHits.WithLabelValues("investment", "hit").Inc()
			return &result, nil
		}
	}
	metrics.CacheHits.WithLabelValues("investment", "miss").Inc()

	result, err := simulation.InvestmentProjection(input)
	if err != nil {
		metrics.Simulations.WithLabelValues("investment", "error").Inc()
		return nil, err
	}
	metrics.Simulations.WithLabelValues("investment", "ok").Inc()

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(payload), SimulationCacheTTL); err != nil {
			log.Printf("Warning: failed to cache investment simulation: %v", err)
		}
	}

	if err := s.repo.SaveInvestment(input, result); err != nil {
		log.Printf("Warning: failed to save investment simulation: %v", err)
	}

	return result, nil
}

func creditCacheKey(in domain.LoanSimulationInput) string {
	return fmt.Sprintf("sim:credit:%s:%s:%d:%s:%d",
		in.Principal, in.MonthlyRate, in.TermMonths,
		in.DisbursementDate.Format("2006-01-02"), in.PaymentDay)
}

func investmentCacheKey(in domain.InvestmentSimulationInput) string {
	return fmt.Sprintf("sim:investment:%s:%s:%d:%s",
		in.Principal, in.AnnualRate, in.TermMonths,
		in.StartDate.Format("2006-01-02"))
}
