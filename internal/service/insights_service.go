package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/export"
	"github.com/mayankpokhriyal/neuronap/internal/quality"
	"github.com/mayankpokhriyal/neuronap/internal/repository"
	"github.com/mayankpokhriyal/neuronap/internal/rhythm"
	"github.com/mayankpokhriyal/neuronap/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Defaults used for quality prediction when a log does not carry the
	// optional lifestyle fields.
	DefaultActivityMinutes = 60
	DefaultStressLevel     = 5
)

// InsightsService assembles the full sleep report for a user's latest log:
// sleep debt, circadian profile, predicted quality, recommendations and
// rolling averages.
type InsightsService interface {
	// Report generates the sleep report for a user.
	Report(ctx context.Context, userID uuid.UUID) (*domain.SleepReport, error)
	// Export renders the report and log history as a markdown document.
	Export(ctx context.Context, userID uuid.UUID) (*domain.ReportDocument, error)
}

type insightsService struct {
	metricsService MetricsService
	model          *quality.Model
	sleepLogRepo   repository.SleepLogRepository
	userRepo       repository.UserRepository
}

// NewInsightsService creates a new InsightsService. The quality model handle
// is injected so trained and untrained states can live side by side.
func NewInsightsService(
	metricsService MetricsService,
	model *quality.Model,
	sleepLogRepo repository.SleepLogRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		metricsService: metricsService,
		model:          model,
		sleepLogRepo:   sleepLogRepo,
		userRepo:       userRepo,
	}
}

func (s *insightsService) Report(ctx context.Context, userID uuid.UUID) (*domain.SleepReport, error) {
	tracer := otel.Tracer("neuronap-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Report",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// The report is anchored to the most recent log.
	latest, err := s.sleepLogRepo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	debt, err := rhythm.SleepDebt(latest.SleepTime, latest.WakeTime)
	if err != nil {
		return nil, err
	}

	profile, err := rhythm.Compute(latest.SleepTime, latest.WakeTime, latest.EnergyLevel)
	if err != nil {
		return nil, err
	}

	sleep, _ := domain.ParseClock(latest.SleepTime)
	wake, _ := domain.ParseClock(latest.WakeTime)
	duration := domain.HoursBetween(sleep, wake)

	activity := DefaultActivityMinutes
	if latest.ActivityMinutes != nil {
		activity = *latest.ActivityMinutes
	}
	stress := DefaultStressLevel
	if latest.StressLevel != nil {
		stress = *latest.StressLevel
	}
	predicted := s.model.Predict(duration, activity, stress)
	telemetry.ObserveQualityPrediction(s.model.Trained())

	averages, err := s.metricsService.Averages(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &domain.SleepReport{
		SleepDebt:       debt,
		Rhythm:          *profile,
		Quality:         predicted,
		Recommendations: Recommendations(debt, profile.Chronotype, predicted, profile),
		Averages:        *averages,
	}

	telemetry.ReportsGenerated.Inc()
	span.SetAttributes(
		attribute.Float64("report.sleep_debt", debt),
		attribute.String("report.chronotype", string(profile.Chronotype)),
		attribute.Int("report.quality", predicted),
	)

	return report, nil
}

// Export renders the user's current report plus their log history into a
// downloadable document.
func (s *insightsService) Export(ctx context.Context, userID uuid.UUID) (*domain.ReportDocument, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := s.Report(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.sleepLogRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.ReportDocument{
		Filename: export.Filename(user.Name),
		Content:  export.RenderReport(user.Name, report, logs),
	}, nil
}

// Recommendations builds the ordered, deterministic tip list. Conditional
// tips come first, followed by exactly five marker lines in fixed order, so
// the total varies between 5 and 8.
func Recommendations(debt float64, chronotype domain.Chronotype, quality int, profile *domain.RhythmProfile) []string {
	var tips []string
	if debt > 1 {
		tips = append(tips, fmt.Sprintf("You're missing %v hours of sleep. Aim for 8+ hours tonight!", debt))
	}
	switch chronotype {
	case domain.ChronotypeNightOwl:
		tips = append(tips, fmt.Sprintf("Wind down with calm music an hour before %s.", profile.Bedtime))
	case domain.ChronotypeEarlyBird:
		tips = append(tips, fmt.Sprintf("Avoid late naps to stick to %s.", profile.Bedtime))
	}
	if quality < 6 {
		tips = append(tips, fmt.Sprintf("Try a 10-minute calm-down routine before %s.", profile.Bedtime))
	}
	tips = append(tips,
		fmt.Sprintf("Wake Up Time (%s): Start your day here.", profile.WakeTime),
		fmt.Sprintf("Peak Performance (%s): Tackle tough tasks now.", profile.MorningPeak),
		fmt.Sprintf("Afternoon Dip (%s): Take a short break or nap.", profile.AfternoonDip),
		fmt.Sprintf("Evening Boost (%s): Good for exercise or projects.", profile.EveningPeak),
		fmt.Sprintf("Bedtime (%s): Get to bed to reset your rhythm.", profile.Bedtime),
	)
	return tips
}
