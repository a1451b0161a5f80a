package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/repository"
	"github.com/mayankpokhriyal/neuronap/internal/rhythm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MetricsService reduces a user's sleep log history into rolling averages.
type MetricsService interface {
	// Averages aggregates all of the user's sleep logs.
	Averages(ctx context.Context, userID uuid.UUID) (*domain.LogAverages, error)
}

type metricsService struct {
	sleepLogRepo repository.SleepLogRepository
	userRepo     repository.UserRepository
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(sleepLogRepo repository.SleepLogRepository, userRepo repository.UserRepository) MetricsService {
	return &metricsService{
		sleepLogRepo: sleepLogRepo,
		userRepo:     userRepo,
	}
}

func (s *metricsService) Averages(ctx context.Context, userID uuid.UUID) (*domain.LogAverages, error) {
	tracer := otel.Tracer("neuronap-api/metrics")
	ctx, span := tracer.Start(ctx, "MetricsService.Averages",
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

	logs, err := s.sleepLogRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	averages, err := AnalyzeLogs(logs)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("logs.count", averages.LogCount))

	return &averages, nil
}

// AnalyzeLogs computes rolling averages over a sequence of sleep logs: mean
// sleep debt (2 decimals), chronotype bucketed from the averaged midpoint
// hour, and mean reported energy (1 decimal). An empty sequence yields
// {0, "N/A", 0}.
func AnalyzeLogs(logs []domain.SleepLog) (domain.LogAverages, error) {
	if len(logs) == 0 {
		return domain.LogAverages{AvgChronotype: domain.ChronotypeUnknown}, nil
	}

	var totalDebt, totalMidpoint, totalEnergy float64
	for _, log := range logs {
		debt, err := rhythm.SleepDebt(log.SleepTime, log.WakeTime)
		if err != nil {
			return domain.LogAverages{}, err
		}
		midpoint, err := rhythm.MidpointHour(log.SleepTime, log.WakeTime)
		if err != nil {
			return domain.LogAverages{}, err
		}
		totalDebt += debt
		totalMidpoint += midpoint
		totalEnergy += float64(log.EnergyLevel)
	}

	n := float64(len(logs))
	// The chronotype comes from the averaged midpoint, not a majority vote
	// over the per-entry chronotypes.
	return domain.LogAverages{
		AvgDebt:       math.Round(totalDebt/n*100) / 100,
		AvgChronotype: rhythm.Classify(totalMidpoint / n),
		AvgEnergy:     math.Round(totalEnergy/n*10) / 10,
		LogCount:      len(logs),
	}, nil
}
