package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return domain.ErrConflict
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSleepLogRepository is a mock implementation of SleepLogRepository.
// Insertion order doubles as creation order.
type MockSleepLogRepository struct {
	logs []domain.SleepLog
	err  error
}

func NewMockSleepLogRepository() *MockSleepLogRepository {
	return &MockSleepLogRepository{}
}

func (m *MockSleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(len(m.logs)) * time.Hour)
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockSleepLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.logs {
		if m.logs[i].ID == id {
			return &m.logs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	// Newest first, mirroring the DESC index order of the real repository.
	var result []domain.SleepLog
	for i := len(m.logs) - 1; i >= 0; i-- {
		if m.logs[i].UserID == userID {
			result = append(result, m.logs[i])
		}
	}
	return result, nil
}

func (m *MockSleepLogRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	return result, nil
}

func (m *MockSleepLogRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := len(m.logs) - 1; i >= 0; i-- {
		if m.logs[i].UserID == userID {
			return &m.logs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepLogRepository) SetError(err error) {
	m.err = err
}

// Helper functions
func intPtr(i int) *int {
	return &i
}
