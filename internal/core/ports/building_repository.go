package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// BuildingRepository defines persistence operations on the buildings
// collection. Floors and rooms travel embedded in the building document.
type BuildingRepository interface {
	Insert(ctx context.Context, b *domain.Building) (*domain.Building, error)
	// FindAll returns every building; an empty collection is an empty slice.
	FindAll(ctx context.Context) ([]domain.Building, error)
	// FindByAmenities returns buildings offering every amenity in the list
	// (contains-all, not any-of).
	FindByAmenities(ctx context.Context, amenities []string) ([]domain.Building, error)
	// FindByID returns domain.ErrBuildingNotFound for unknown and malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Building, error)
	// Replace overwrites the full document, returning the updated building or
	// domain.ErrBuildingNotFound.
	Replace(ctx context.Context, id string, b *domain.Building) (*domain.Building, error)
	Delete(ctx context.Context, id string) error
}
