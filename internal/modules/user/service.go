package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	// EnsureUser provisions a local user row for the given provider subject
	// on first sign-in. Repeated calls with the same id are no-ops.
	EnsureUser(ctx context.Context, id, name, email, image string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}
