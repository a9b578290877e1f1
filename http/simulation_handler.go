package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"inka-simulator/domain"
	"inka-simulator/service"
)

const dateLayout = "2006-01-02"

// SimulationHandler es el adaptador HTTP de los simuladores: convierte los
// campos del formulario (números y fechas planas) a la entrada del motor.
type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

type creditRequest struct {
	Principal        float64 `json:"principal"`
	MonthlyRate      float64 `json:"monthly_rate"`
	TermMonths       int     `json:"term_months"`
	DisbursementDate string  `json:"disbursement_date"`
	PaymentDay       int     `json:"payment_day"`
}

func (h *SimulationHandler) SimulateCredit(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req creditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	disbursement, err := time.Parse(dateLayout, req.DisbursementDate)
	if err != nil {
		http.Error(w, "fecha de desembolso inválida", http.StatusBadRequest)
		return
	}

	input := domain.LoanSimulationInput{
		Principal:        decimal.NewFromFloat(req.Principal),
		MonthlyRate:      decimal.NewFromFloat(req.MonthlyRate),
		TermMonths:       req.TermMonths,
		DisbursementDate: disbursement,
		PaymentDay:       req.PaymentDay,
	}

	result, err := h.service.SimulateCredit(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

type investmentRequest struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
	StartDate  string  `json:"start_date"`
}

func (h *SimulationHandler) SimulateInvestment(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req investmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		http.Error(w, "fecha de inicio inválida", http.StatusBadRequest)
		return
	}

	input := domain.InvestmentSimulationInput{
		Principal:  decimal.NewFromFloat(req.Principal),
		AnnualRate: decimal.NewFromFloat(req.AnnualRate),
		TermMonths: req.TermMonths,
		StartDate:  start,
	}

	result, err := h.service.SimulateInvestment(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
