package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"inka-simulator/domain"
	"inka-simulator/service"
)

type AgendaHandler struct {
	service *service.AgendaService
}

func NewAgendaHandler(service *service.AgendaService) *AgendaHandler {
	return &AgendaHandler{service: service}
}

type reminderRequest struct {
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	DueDate    string `json:"due_date"`
	Recurrence string `json:"recurrence"`
}

// Reminders atiende GET (listar) y POST (crear) sobre /agenda/reminders.
func (h *AgendaHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reminders, err := h.service.ListReminders()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reminders)

	case http.MethodPost:
		var req reminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		dueDate, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			http.Error(w, "fecha inválida", http.StatusBadRequest)
			return
		}
		reminder, err := h.service.CreateReminder(req.Title, req.Notes, dueDate, domain.Recurrence(req.Recurrence))
		if err != nil {
			var invalid *domain.InvalidInputError
			if errors.As(err, &invalid) {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(reminder)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Week devuelve la semana de aportes de la fecha pedida (?date=YYYY-MM-DD, hoy por defecto).
func (h *AgendaHandler) Week(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			http.Error(w, "fecha inválida", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	week, err := h.service.WeekFor(date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(week)
}
