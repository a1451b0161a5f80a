package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	registerFunc     func(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	authenticateFunc func(ctx context.Context, req *domain.LoginRequest) (*domain.User, error)
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &domain.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, req *domain.LoginRequest) (*domain.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, req)
	}
	return &domain.User{
		ID:    uuid.New(),
		Name:  "Maya",
		Email: req.Email,
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{
		ID:    id,
		Name:  "Maya",
		Email: "maya@example.com",
		Age:   29,
	}, nil
}

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error)
}

func (m *MockSleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepLog{
		ID:              uuid.New(),
		UserID:          userID,
		SleepTime:       req.SleepTime,
		WakeTime:        req.WakeTime,
		EnergyLevel:     req.EnergyLevel,
		StressLevel:     req.StressLevel,
		ActivityMinutes: req.ActivityMinutes,
		CreatedAt:       time.Now(),
	}, nil
}

func (m *MockSleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepLogListResponse{
		Data:       []domain.SleepLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	averagesFunc func(ctx context.Context, userID uuid.UUID) (*domain.LogAverages, error)
}

func (m *MockMetricsService) Averages(ctx context.Context, userID uuid.UUID) (*domain.LogAverages, error) {
	if m.averagesFunc != nil {
		return m.averagesFunc(ctx, userID)
	}
	return &domain.LogAverages{
		AvgDebt:       1.25,
		AvgChronotype: domain.ChronotypeIntermediate,
		AvgEnergy:     6.5,
		LogCount:      4,
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	reportFunc func(ctx context.Context, userID uuid.UUID) (*domain.SleepReport, error)
	exportFunc func(ctx context.Context, userID uuid.UUID) (*domain.ReportDocument, error)
}

func (m *MockInsightsService) Report(ctx context.Context, userID uuid.UUID) (*domain.SleepReport, error) {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, userID)
	}
	return &domain.SleepReport{
		SleepDebt: 1.5,
		Rhythm: domain.RhythmProfile{
			Midpoint:     "03:00",
			Chronotype:   domain.ChronotypeEarlyBird,
			WakeTime:     "07:00",
			MorningPeak:  "10:00",
			AfternoonDip: "14:00",
			EveningPeak:  "18:00",
			Bedtime:      "23:00",
		},
		Quality: 7,
		Recommendations: []string{
			"Wake Up Time (07:00): Start your day here.",
		},
		Averages: domain.LogAverages{
			AvgDebt:       1.25,
			AvgChronotype: domain.ChronotypeEarlyBird,
			AvgEnergy:     6.5,
			LogCount:      4,
		},
	}, nil
}

func (m *MockInsightsService) Export(ctx context.Context, userID uuid.UUID) (*domain.ReportDocument, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, userID)
	}
	return &domain.ReportDocument{
		Filename: "neuronap_report_maya.md",
		Content:  "# Maya's Sleeping Report\n",
	}, nil
}

// Helper functions
func intPtr(i int) *int {
	return &i
}
