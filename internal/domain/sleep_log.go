package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepLog is one night of sleep as reported by the user. Times are wall-clock
// HH:MM strings on a 24-hour wheel; a wake time earlier than the sleep time
// means the interval wraps past midnight. Logs are append-only: computation
// never mutates or deletes them.
type SleepLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_logs_user_created" json:"user_id"`
	SleepTime       string    `gorm:"type:char(5);not null" json:"sleep_time"`
	WakeTime        string    `gorm:"type:char(5);not null" json:"wake_time"`
	EnergyLevel     int       `gorm:"type:smallint;not null" json:"energy_level"`
	StressLevel     *int      `gorm:"type:smallint" json:"stress_level,omitempty"`
	ActivityMinutes *int      `gorm:"type:smallint" json:"activity_minutes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index:idx_sleep_logs_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// CreateSleepLogRequest is the request body for recording a sleep log.
// This is the single canonical schema for log entries; optional lifestyle
// fields are explicit, never positional.
// @Description Request payload for recording one night of sleep.
type CreateSleepLogRequest struct {
	// Sleep start time, zero-padded 24-hour HH:MM
	SleepTime string `json:"sleep_time" validate:"required,clock" example:"23:00"`
	// Wake time, zero-padded 24-hour HH:MM; may be earlier than sleep_time (wraps past midnight)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Self-reported energy level, 1 (drained) to 10 (fully rested)
	EnergyLevel int `json:"energy_level" validate:"required,min=1,max=10" example:"7"`
	// Optional self-reported stress level, 1-10
	StressLevel *int `json:"stress_level,omitempty" validate:"omitempty,min=1,max=10" example:"5"`
	// Optional physical activity in minutes
	ActivityMinutes *int `json:"activity_minutes,omitempty" validate:"omitempty,min=0,max=1440" example:"45"`
}

// SleepLogResponse is the response body for sleep log endpoints.
type SleepLogResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	SleepTime       string    `json:"sleep_time" example:"23:00"`
	WakeTime        string    `json:"wake_time" example:"07:00"`
	EnergyLevel     int       `json:"energy_level" example:"7"`
	StressLevel     *int      `json:"stress_level,omitempty" example:"5"`
	ActivityMinutes *int      `json:"activity_minutes,omitempty" example:"45"`
	CreatedAt       time.Time `json:"created_at"`
}

func (s *SleepLog) ToResponse() SleepLogResponse {
	return SleepLogResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		SleepTime:       s.SleepTime,
		WakeTime:        s.WakeTime,
		EnergyLevel:     s.EnergyLevel,
		StressLevel:     s.StressLevel,
		ActivityMinutes: s.ActivityMinutes,
		CreatedAt:       s.CreatedAt,
	}
}

// SleepLogListResponse is the response body for listing sleep logs.
type SleepLogListResponse struct {
	Data       []SleepLogResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepLogFilter contains filter parameters for listing sleep logs.
type SleepLogFilter struct {
	Limit  int
	Cursor string
}
