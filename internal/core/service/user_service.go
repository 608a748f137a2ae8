package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

// UserService implements the user directory use-cases.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create stores a new user. The input arrives validated; the repository
// assigns the id.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Name:        input.Name,
		Classes:     input.Classes,
		RoomNumbers: input.RoomNumbers,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("name", created.Name).Msg("user created")
	return created, nil
}

// List returns users filtered by name and/or classes. Both empty means all
// users; no matches is an empty list, not an error.
func (s *UserService) List(ctx context.Context, name, classes string) ([]domain.User, error) {
	return s.repo.Find(ctx, ports.UserFilter{Name: name, Classes: classes})
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
