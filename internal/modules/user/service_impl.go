package user

import (
	"context"
	"errors"
)

const (
	defaultName  = "Unknown User"
	defaultEmail = "user@example.com"
)

// ErrMissingSubject is returned when the provider asserts no subject id.
// Sign-in must be rejected in that case rather than proceed without a
// usable user record.
var ErrMissingSubject = errors.New("identity provider returned no subject")

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) EnsureUser(ctx context.Context, id, name, email, image string) (*User, error) {
	if id == "" {
		return nil, ErrMissingSubject
	}

	existing, err := s.repo.GetUserByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if name == "" {
		name = defaultName
	}
	if email == "" {
		email = defaultEmail
	}

	u := &User{
		ID:    id,
		Name:  name,
		Email: email,
		Image: image,
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}
