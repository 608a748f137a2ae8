package domain

import "time"

// Location is a geographic point on campus.
type Location struct {
	Longitude float64 `json:"longitude" bson:"longitude"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
}

// Room is a single space within a floor.
type Room struct {
	Name           string            `json:"name" bson:"name"`
	Coordinates    Location          `json:"coordinates" bson:"coordinates"`
	Floor          int               `json:"floor" bson:"floor"`
	Occupancy      bool              `json:"occupancy" bson:"occupancy"`
	OpenHours      string            `json:"openHours,omitempty" bson:"openHours,omitempty"`
	AdditionalInfo map[string]string `json:"additionalInfo,omitempty" bson:"additionalInfo,omitempty"`
}

// Floor groups the rooms on a single level of a building.
type Floor struct {
	Number int    `json:"number" bson:"number"`
	Rooms  []Room `json:"rooms" bson:"rooms"`
}

// Building is the aggregate root for the campus map: floors and rooms are
// embedded documents, never addressed on their own.
type Building struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Location  Location  `json:"location" bson:"location"`
	Floors    []Floor   `json:"floors" bson:"floors"`
	Amenities []string  `json:"amenities" bson:"amenities"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// HasAmenities reports whether the building offers every amenity in want.
func (b *Building) HasAmenities(want []string) bool {
	have := make(map[string]struct{}, len(b.Amenities))
	for _, a := range b.Amenities {
		have[a] = struct{}{}
	}
	for _, w := range want {
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}
