package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"tiered-loan/domain"
	"tiered-loan/service"
)

const maxRequestBytes = 64 << 10

type ScheduleHandler struct {
	service *service.AmortizationService
	log     *logrus.Logger
}

func NewScheduleHandler(service *service.AmortizationService, log *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, log: log}
}

// CalculateSchedule answers POST /loan/schedule with the report of the
// submitted plan.
func (h *ScheduleHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var plan domain.LoanPlan
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&plan); err != nil {
		h.log.Debugf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.Calculate(r.Context(), plan)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Errorf("Error calculating schedule: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, report)
}

// Health reports liveness on GET /health.
func Health(log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, log, map[string]string{"status": "ok"})
	}
}

// writeJSON codifica en buffer primero para no escribir el header si falla
func writeJSON(w http.ResponseWriter, log *logrus.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("Error writing response: %v", err)
	}
}
