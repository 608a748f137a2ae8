package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// BuildingInput carries the validated fields for creating or replacing a
// building.
type BuildingInput struct {
	Name      string
	Location  domain.Location
	Floors    []domain.Floor
	Amenities []string
}

// BuildingService defines use-case operations for campus buildings.
type BuildingService interface {
	Create(ctx context.Context, input BuildingInput) (*domain.Building, error)
	List(ctx context.Context) ([]domain.Building, error)
	// FilterByAmenities returns buildings offering all of the given amenities.
	FilterByAmenities(ctx context.Context, amenities []string) ([]domain.Building, error)
	Get(ctx context.Context, id string) (*domain.Building, error)
	// Update replaces the full document at id.
	Update(ctx context.Context, id string, input BuildingInput) (*domain.Building, error)
	Delete(ctx context.Context, id string) error
}
