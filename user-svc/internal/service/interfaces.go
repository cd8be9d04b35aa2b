package service

import (
	"context"
	"errors"

	"quickbite/user-svc/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read-only view other services join against.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
}
