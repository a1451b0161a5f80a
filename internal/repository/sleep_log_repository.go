package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/pkg/pagination"
	"gorm.io/gorm"
)

type SleepLogRepository interface {
	Create(ctx context.Context, log *domain.SleepLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error)
	// ListAll returns every log for a user, oldest first, for aggregation.
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SleepLog, error)
	// Latest returns the most recently recorded log, or domain.ErrNotFound.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error)
}

type sleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) SleepLogRepository {
	return &sleepLogRepository{db: db}
}

func (r *sleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *sleepLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *sleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records created before the cursor row,
			// or at the same instant with a smaller id.
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.SleepLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *sleepLogRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SleepLog, error) {
	var logs []domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *sleepLogRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}
