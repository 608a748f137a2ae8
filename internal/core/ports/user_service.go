package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// CreateUserInput carries the validated fields for a new user. The id is
// always assigned by the persistence layer.
type CreateUserInput struct {
	Name        string
	Classes     string
	RoomNumbers string
}

// UserService defines use-case operations for the user directory.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context, name, classes string) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
