package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTimeFormat  = errors.New("invalid time format")
	ErrInvalidRange       = errors.New("value out of range")
	ErrModelUnavailable   = errors.New("quality model unavailable")
)
