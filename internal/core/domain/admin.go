package domain

import (
	"errors"
	"time"
)

var ErrAdminExists = errors.New("admin already exists")
var ErrAdminNotFound = errors.New("admin not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")

// Admin models an authenticated operator permitted to manage employee records.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
