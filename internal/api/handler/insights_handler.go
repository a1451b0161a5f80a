package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/api/validation"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/quality"
	"github.com/mayankpokhriyal/neuronap/internal/service"
	"github.com/mayankpokhriyal/neuronap/internal/telemetry"
	"github.com/mayankpokhriyal/neuronap/pkg/problem"
)

type InsightsHandler struct {
	metricsService  service.MetricsService
	insightsService service.InsightsService
	model           *quality.Model
}

func NewInsightsHandler(metricsService service.MetricsService, insightsService service.InsightsService, model *quality.Model) *InsightsHandler {
	return &InsightsHandler{
		metricsService:  metricsService,
		insightsService: insightsService,
		model:           model,
	}
}

// Report handles GET /v1/users/{userId}/report
// @Summary Get sleep report
// @Description Full report for the user's latest log: sleep debt, circadian profile, predicted quality, recommendations and rolling averages.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SleepReport
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or has no sleep logs"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/report [get]
func (h *InsightsHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	report, err := h.insightsService.Report(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found or has no sleep logs").Write(w)
			return
		}
		problem.InternalError("Failed to generate report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// Averages handles GET /v1/users/{userId}/averages
// @Summary Get rolling averages
// @Description Average sleep debt, chronotype and energy over all of the user's logs.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.LogAverages
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/averages [get]
func (h *InsightsHandler) Averages(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	averages, err := h.metricsService.Averages(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute averages").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(averages)
}

// Export handles GET /v1/users/{userId}/report/export
// @Summary Export sleep report
// @Description Render the current report and log history as a markdown document.
// @Tags insights
// @Produce text/markdown
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {string} string "Markdown document"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or has no sleep logs"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/report/export [get]
func (h *InsightsHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	doc, err := h.insightsService.Export(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found or has no sleep logs").Write(w)
			return
		}
		problem.InternalError("Failed to export report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+doc.Filename+"\"")
	w.Write([]byte(doc.Content))
}

// Predict handles POST /v1/quality/predictions
// @Summary Predict sleep quality
// @Description Score a lifestyle feature vector with the trained model. Returns the fixed default of 6 when no training data was available.
// @Tags insights
// @Accept json
// @Produce json
// @Param request body domain.PredictQualityRequest true "Feature vector"
// @Success 200 {object} domain.PredictQualityResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /quality/predictions [post]
func (h *InsightsHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req domain.PredictQualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	predicted := h.model.Predict(req.SleepDurationHours, req.ActivityMinutes, req.StressLevel)
	telemetry.ObserveQualityPrediction(h.model.Trained())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.PredictQualityResponse{
		Quality:      predicted,
		ModelTrained: h.model.Trained(),
	})
}
