package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// Handler serves published schedules from the store
type Handler struct {
	database services.ViewScheduleStore
	logger   *zap.Logger
}

// NewHandler creates a Handler
func NewHandler(database services.ViewScheduleStore, logger *zap.Logger) *Handler {
	return &Handler{database: database, logger: logger}
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// EmployeeShiftsResponse lists one employee's published shifts for a month
type EmployeeShiftsResponse struct {
	Month        string                   `json:"month"`
	EmployeeID   string                   `json:"employeeId"`
	EmployeeName string                   `json:"employeeName"`
	Shifts       []services.EmployeeShift `json:"shifts"`
}

// Health reports that the server is up
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetSchedule handles GET /api/months/{month}/schedule
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	view, err := services.PublishedSchedule(r.Context(), h.database, h.logger, chi.URLParam(r, "month"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetEmployeeShifts handles GET /api/months/{month}/employees/{id}/shifts
func (h *Handler) GetEmployeeShifts(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	view, err := services.PublishedSchedule(r.Context(), h.database, h.logger, chi.URLParam(r, "month"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	var name string
	for _, stats := range view.Stats {
		if stats.EmployeeID == employeeID {
			name = stats.Name
			break
		}
	}
	if name == "" {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "employee not found"})
		return
	}

	writeJSON(w, http.StatusOK, EmployeeShiftsResponse{
		Month:        view.MonthKey,
		EmployeeID:   employeeID,
		EmployeeName: name,
		Shifts:       view.ShiftsFor(employeeID),
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMonthNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "schedule not found"})
	case errors.Is(err, services.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
