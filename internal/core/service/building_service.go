package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

// BuildingService implements the campus building use-cases. Buildings carry
// their floors and rooms as embedded documents; all writes are whole-document.
type BuildingService struct {
	repo   ports.BuildingRepository
	logger zerolog.Logger
}

func NewBuildingService(repo ports.BuildingRepository, logger zerolog.Logger) *BuildingService {
	return &BuildingService{repo: repo, logger: logger}
}

func (s *BuildingService) Create(ctx context.Context, input ports.BuildingInput) (*domain.Building, error) {
	now := time.Now().UTC()
	building := &domain.Building{
		Name:      input.Name,
		Location:  input.Location,
		Floors:    input.Floors,
		Amenities: input.Amenities,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, building)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert building")
		return nil, err
	}

	s.logger.Info().Str("building_id", created.ID).Str("name", created.Name).Msg("building created")
	return created, nil
}

func (s *BuildingService) List(ctx context.Context) ([]domain.Building, error) {
	return s.repo.FindAll(ctx)
}

// FilterByAmenities returns buildings offering every amenity in the list.
// An empty list degrades to the unfiltered listing.
func (s *BuildingService) FilterByAmenities(ctx context.Context, amenities []string) ([]domain.Building, error) {
	if len(amenities) == 0 {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByAmenities(ctx, amenities)
}

func (s *BuildingService) Get(ctx context.Context, id string) (*domain.Building, error) {
	return s.repo.FindByID(ctx, id)
}

// Update performs a full-document replace; partial updates are not supported.
func (s *BuildingService) Update(ctx context.Context, id string, input ports.BuildingInput) (*domain.Building, error) {
	building := &domain.Building{
		Name:      input.Name,
		Location:  input.Location,
		Floors:    input.Floors,
		Amenities: input.Amenities,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.repo.Replace(ctx, id, building)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("building_id", id).Msg("building replaced")
	return updated, nil
}

func (s *BuildingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("building_id", id).Msg("building deleted")
	return nil
}
