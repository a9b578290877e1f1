package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"inka-simulator/domain"
	"inka-simulator/service"
)

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
}

func NewTermRecommendationHandler(service *service.TermRecommendationService) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service}
}

type termRecommendationRequest struct {
	Principal        float64 `json:"principal"`
	MonthlyRate      float64 `json:"monthly_rate"`
	MinTermMonths    int     `json:"min_term_months"`
	MaxTermMonths    int     `json:"max_term_months"`
	MaxInstallment   float64 `json:"max_installment"`
	DisbursementDate string  `json:"disbursement_date"`
	PaymentDay       int     `json:"payment_day"`
	Preference       string  `json:"preference"`
}

func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req termRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	disbursement, err := time.Parse(dateLayout, req.DisbursementDate)
	if err != nil {
		http.Error(w, "fecha de desembolso inválida", http.StatusBadRequest)
		return
	}

	input := domain.TermRecommendationInput{
		Principal:        decimal.NewFromFloat(req.Principal),
		MonthlyRate:      decimal.NewFromFloat(req.MonthlyRate),
		MinTermMonths:    req.MinTermMonths,
		MaxTermMonths:    req.MaxTermMonths,
		MaxInstallment:   decimal.NewFromFloat(req.MaxInstallment),
		DisbursementDate: disbursement,
		PaymentDay:       req.PaymentDay,
		Preference:       req.Preference,
	}

	result, err := h.service.RecommendTerm(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
