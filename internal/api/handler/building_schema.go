package handler

import "github.com/campus-compass/campus-api/internal/core/domain"

type locationRequest struct {
	Longitude *float64 `json:"longitude" validate:"required"`
	Latitude  *float64 `json:"latitude"  validate:"required"`
}

func (r locationRequest) toDomain() domain.Location {
	loc := domain.Location{}
	if r.Longitude != nil {
		loc.Longitude = *r.Longitude
	}
	if r.Latitude != nil {
		loc.Latitude = *r.Latitude
	}
	return loc
}

type roomRequest struct {
	Name           string            `json:"name"        validate:"required"`
	Coordinates    locationRequest   `json:"coordinates" validate:"required"`
	Floor          int               `json:"floor"       validate:"required"`
	Occupancy      bool              `json:"occupancy"`
	OpenHours      string            `json:"openHours"`
	AdditionalInfo map[string]string `json:"additionalInfo"`
}

type floorRequest struct {
	Number int           `json:"number" validate:"required"`
	Rooms  []roomRequest `json:"rooms"  validate:"dive"`
}

// buildingRequest is the validated payload for creating or replacing a
// building. Floors and rooms are validated element by element.
type buildingRequest struct {
	Name      string          `json:"name"      validate:"required"`
	Location  locationRequest `json:"location"  validate:"required"`
	Floors    []floorRequest  `json:"floors"    validate:"dive"`
	Amenities []string        `json:"amenities" validate:"dive,required"`
}

func (r *buildingRequest) sanitize() {
	r.Name = cleanString(r.Name)
	for i := range r.Amenities {
		r.Amenities[i] = cleanString(r.Amenities[i])
	}
	for fi := range r.Floors {
		for ri := range r.Floors[fi].Rooms {
			room := &r.Floors[fi].Rooms[ri]
			room.Name = cleanString(room.Name)
			room.OpenHours = cleanString(room.OpenHours)
		}
	}
}

func (r *buildingRequest) toInput() (name string, loc domain.Location, floors []domain.Floor, amenities []string) {
	floors = make([]domain.Floor, 0, len(r.Floors))
	for _, f := range r.Floors {
		rooms := make([]domain.Room, 0, len(f.Rooms))
		for _, rm := range f.Rooms {
			rooms = append(rooms, domain.Room{
				Name:           rm.Name,
				Coordinates:    rm.Coordinates.toDomain(),
				Floor:          rm.Floor,
				Occupancy:      rm.Occupancy,
				OpenHours:      rm.OpenHours,
				AdditionalInfo: rm.AdditionalInfo,
			})
		}
		floors = append(floors, domain.Floor{Number: f.Number, Rooms: rooms})
	}
	if r.Amenities == nil {
		r.Amenities = []string{}
	}
	return r.Name, r.Location.toDomain(), floors, r.Amenities
}
