package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// UserFilter narrows a user listing. Zero-value fields are not applied; the
// empty filter matches every user.
type UserFilter struct {
	Name    string
	Classes string
}

// UserRepository defines persistence operations on the users_list collection.
type UserRepository interface {
	// Insert stores a new user and returns it with the assigned id.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// Find returns all users matching filter; no matches is an empty slice,
	// not an error.
	Find(ctx context.Context, filter UserFilter) ([]domain.User, error)
	// FindByID returns domain.ErrUserNotFound for unknown and malformed ids.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Delete removes a user by id, returning domain.ErrUserNotFound when no
	// document was removed.
	Delete(ctx context.Context, id string) error
}
