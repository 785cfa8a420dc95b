package entity

import (
	"context"
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")

// User is a registered dashboard operator. The configured admin identity
// is not a User; it never touches the store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepositoryInterface interface {
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
