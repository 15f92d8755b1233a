package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user exists with the given id.
var ErrNotFound = errors.New("user not found")

// Repository defines the interface for user data storage.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
}
