package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string    `gorm:"type:char(64);not null" json:"-"`
	Age          int       `gorm:"type:smallint;not null" json:"age"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the request body for registering a user.
// @Description Request payload for creating an account.
type RegisterRequest struct {
	// Display name
	Name string `json:"name" validate:"required,min=1,max=120" example:"Maya"`
	// Unique email address
	Email string `json:"email" validate:"required,email" example:"maya@example.com"`
	// Plaintext password; stored as a one-way hash
	Password string `json:"password" validate:"required,min=6,max=128" example:"hunter22"`
	// Age in years
	Age int `json:"age" validate:"required,min=13,max=120" example:"29"`
}

// LoginRequest is the request body for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"maya@example.com"`
	Password string `json:"password" validate:"required" example:"hunter22"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}
