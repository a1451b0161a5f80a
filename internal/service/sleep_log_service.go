package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/repository"
	"github.com/mayankpokhriyal/neuronap/pkg/pagination"
)

type SleepLogService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error)
}

type sleepLogService struct {
	repo     repository.SleepLogRepository
	userRepo repository.UserRepository
}

func NewSleepLogService(repo repository.SleepLogRepository, userRepo repository.UserRepository) SleepLogService {
	return &sleepLogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create appends a sleep log for the user. Times are validated here as well
// as at the API boundary so every caller gets the same error taxonomy.
func (s *sleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if _, err := domain.ParseClock(req.SleepTime); err != nil {
		return nil, err
	}
	if _, err := domain.ParseClock(req.WakeTime); err != nil {
		return nil, err
	}
	if req.EnergyLevel < 1 || req.EnergyLevel > 10 {
		return nil, fmt.Errorf("%w: energy level %d not in 1-10", domain.ErrInvalidRange, req.EnergyLevel)
	}
	if req.StressLevel != nil && (*req.StressLevel < 1 || *req.StressLevel > 10) {
		return nil, fmt.Errorf("%w: stress level %d not in 1-10", domain.ErrInvalidRange, *req.StressLevel)
	}
	if req.ActivityMinutes != nil && *req.ActivityMinutes < 0 {
		return nil, fmt.Errorf("%w: activity minutes must not be negative", domain.ErrInvalidRange)
	}

	log := &domain.SleepLog{
		UserID:          userID,
		SleepTime:       req.SleepTime,
		WakeTime:        req.WakeTime,
		EnergyLevel:     req.EnergyLevel,
		StressLevel:     req.StressLevel,
		ActivityMinutes: req.ActivityMinutes,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *sleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit

	// Trim to actual limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.SleepLogListResponse{
		Data: make([]domain.SleepLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, log := range logs {
		response.Data[i] = log.ToResponse()
	}

	if hasMore && len(logs) > 0 {
		lastLog := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:        lastLog.ID,
			CreatedAt: lastLog.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
