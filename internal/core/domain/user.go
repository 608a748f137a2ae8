package domain

// User is a directory entry for a student. Field casing mirrors the
// users_list collection documents, where Classes and RoomNumbers are
// stored capitalized.
type User struct {
	ID          string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Classes     string `json:"Classes" bson:"Classes"`
	RoomNumbers string `json:"RoomNumbers,omitempty" bson:"RoomNumbers,omitempty"`
}
