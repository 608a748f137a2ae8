package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
	"github.com/campus-compass/campus-api/internal/core/token"
)

// AuthService implements signup and login over a credential store and a
// token issuer. Password plaintext never leaves this package: it is hashed
// on signup and compared on login, nothing else.
type AuthService struct {
	repo   ports.CredentialRepository
	issuer *token.Issuer
}

func NewAuthService(repo ports.CredentialRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Signup stores a new credential and returns a token for the fresh identity.
// Username uniqueness is enforced by the repository's atomic insert, so two
// racing signups on the same name cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	cred := &domain.Credential{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, cred); err != nil {
		return "", err
	}

	return s.issuer.Issue(username)
}

// Login verifies the password against the stored hash and returns a fresh
// token. Unknown usernames and wrong passwords collapse to the same error so
// responses cannot be used to probe for accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	// A malformed stored hash fails the comparison like a wrong password.
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issuer.Issue(username)
}
