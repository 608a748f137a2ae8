package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

type stubBuildingRepo struct {
	buildings map[string]domain.Building
	nextID    int
}

func newStubBuildingRepo() *stubBuildingRepo {
	return &stubBuildingRepo{buildings: make(map[string]domain.Building), nextID: 1}
}

func (r *stubBuildingRepo) Insert(_ context.Context, b *domain.Building) (*domain.Building, error) {
	stored := *b
	stored.ID = fmt.Sprintf("bld-%d", r.nextID)
	r.nextID++
	r.buildings[stored.ID] = stored
	out := stored
	return &out, nil
}

func (r *stubBuildingRepo) FindAll(_ context.Context) ([]domain.Building, error) {
	out := []domain.Building{}
	for _, b := range r.buildings {
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBuildingRepo) FindByAmenities(_ context.Context, amenities []string) ([]domain.Building, error) {
	out := []domain.Building{}
	for _, b := range r.buildings {
		b := b
		if b.HasAmenities(amenities) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBuildingRepo) FindByID(_ context.Context, id string) (*domain.Building, error) {
	b, ok := r.buildings[id]
	if !ok {
		return nil, domain.ErrBuildingNotFound
	}
	out := b
	return &out, nil
}

func (r *stubBuildingRepo) Replace(_ context.Context, id string, b *domain.Building) (*domain.Building, error) {
	if _, ok := r.buildings[id]; !ok {
		return nil, domain.ErrBuildingNotFound
	}
	stored := *b
	stored.ID = id
	r.buildings[id] = stored
	out := stored
	return &out, nil
}

func (r *stubBuildingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.buildings[id]; !ok {
		return domain.ErrBuildingNotFound
	}
	delete(r.buildings, id)
	return nil
}

func seedBuildings(t *testing.T, repo *stubBuildingRepo) {
	t.Helper()
	for _, b := range []domain.Building{
		{Name: "Kennedy Library", Amenities: []string{"Library", "Cafe", "Printers"}},
		{Name: "Rec Center", Amenities: []string{"Gym", "Pool"}},
		{Name: "University Union", Amenities: []string{"Cafe"}},
	} {
		b := b
		if _, err := repo.Insert(context.Background(), &b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestBuildingService_Create_AssignsID(t *testing.T) {
	svc := NewBuildingService(newStubBuildingRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.BuildingInput{
		Name:      "Engineering East",
		Location:  domain.Location{Longitude: -120.65, Latitude: 35.3},
		Amenities: []string{"Labs"},
		Floors: []domain.Floor{
			{Number: 1, Rooms: []domain.Room{{Name: "Room 101", Floor: 1}}},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if len(created.Floors) != 1 || len(created.Floors[0].Rooms) != 1 {
		t.Fatalf("embedded floors lost: %+v", created.Floors)
	}
}

func TestBuildingService_FilterByAmenities_ContainsAll(t *testing.T) {
	repo := newStubBuildingRepo()
	svc := NewBuildingService(repo, zerolog.Nop())
	seedBuildings(t, repo)

	cafes, err := svc.FilterByAmenities(context.Background(), []string{"Cafe"})
	if err != nil {
		t.Fatalf("FilterByAmenities: %v", err)
	}
	if len(cafes) != 2 {
		t.Fatalf("expected 2 buildings with a cafe, got %d", len(cafes))
	}

	both, err := svc.FilterByAmenities(context.Background(), []string{"Cafe", "Library"})
	if err != nil {
		t.Fatalf("FilterByAmenities: %v", err)
	}
	if len(both) != 1 || both[0].Name != "Kennedy Library" {
		t.Fatalf("contains-all filter failed: %+v", both)
	}

	none, err := svc.FilterByAmenities(context.Background(), []string{"Helipad"})
	if err != nil {
		t.Fatalf("FilterByAmenities: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}

	// Empty filter returns everything.
	all, err := svc.FilterByAmenities(context.Background(), nil)
	if err != nil {
		t.Fatalf("FilterByAmenities: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 buildings, got %d", len(all))
	}
}

func TestBuildingService_Update_FullReplace(t *testing.T) {
	repo := newStubBuildingRepo()
	svc := NewBuildingService(repo, zerolog.Nop())
	seedBuildings(t, repo)

	updated, err := svc.Update(context.Background(), "bld-2", ports.BuildingInput{
		Name:      "Recreation Center",
		Amenities: []string{"Gym"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != "bld-2" {
		t.Fatalf("id changed on replace: %s", updated.ID)
	}
	if updated.Name != "Recreation Center" {
		t.Fatalf("name not replaced: %s", updated.Name)
	}
	// Replace semantics: fields absent from the input are gone.
	if len(updated.Amenities) != 1 {
		t.Fatalf("expected replaced amenities, got %v", updated.Amenities)
	}
}

func TestBuildingService_Update_NotFound(t *testing.T) {
	svc := NewBuildingService(newStubBuildingRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.BuildingInput{Name: "X"}); !errors.Is(err, domain.ErrBuildingNotFound) {
		t.Fatalf("expected ErrBuildingNotFound, got %v", err)
	}
}

func TestBuildingService_Delete_Twice(t *testing.T) {
	repo := newStubBuildingRepo()
	svc := NewBuildingService(repo, zerolog.Nop())
	seedBuildings(t, repo)

	if err := svc.Delete(context.Background(), "bld-1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "bld-1"); !errors.Is(err, domain.ErrBuildingNotFound) {
		t.Fatalf("expected ErrBuildingNotFound, got %v", err)
	}
}
