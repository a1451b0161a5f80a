package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/api/validation"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/service"
	"github.com/mayankpokhriyal/neuronap/pkg/problem"
)

type SleepLogHandler struct {
	service service.SleepLogService
}

func NewSleepLogHandler(service service.SleepLogService) *SleepLogHandler {
	return &SleepLogHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sleep-logs
// @Summary Record sleep
// @Description Append a sleep log: sleep/wake wall-clock times plus a 1-10 energy self-report and optional stress/activity fields.
// @Tags sleep-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateSleepLogRequest true "Sleep log data"
// @Success 201 {object} domain.SleepLogResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Malformed time or out-of-range value"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs [post]
func (h *SleepLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidTimeFormat) || errors.Is(err, domain.ErrInvalidRange) {
			problem.UnprocessableEntity(err.Error()).Write(w)
			return
		}
		problem.InternalError("Failed to create sleep log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(log.ToResponse())
}

// List handles GET /v1/users/{userId}/sleep-logs
// @Summary List sleep logs
// @Description Fetch paginated sleep history, newest first.
// @Tags sleep-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepLogListResponse "Sleep logs with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs [get]
func (h *SleepLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep logs").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.SleepLogFilter, []problem.FieldError) {
	var filter domain.SleepLogFilter
	var fieldErrors []problem.FieldError

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
