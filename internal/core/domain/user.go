package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUnauthenticated = errors.New("authentication required")

// User models a registered account. AccessToken is the permanent bearer
// credential assigned at signup; it is never rotated or re-issued.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AccessToken  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
