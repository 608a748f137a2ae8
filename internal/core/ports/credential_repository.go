package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// CredentialRepository persists login credentials. Create must be atomic with
// respect to the username uniqueness constraint: two concurrent inserts of
// the same username resolve to exactly one success and one
// domain.ErrUsernameTaken.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
}
