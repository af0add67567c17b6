package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWrongPassword = errors.New("current password is incorrect")
var ErrWeakPassword = errors.New("password must be at least 8 characters")

// User models an account that can sign in to the admin panel.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
