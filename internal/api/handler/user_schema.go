package handler

import "github.com/campus-compass/campus-api/internal/core/domain"

// createUserRequest is the validated payload for a new directory entry.
// Classes carries the course list as free text; the two-character minimum
// matches the constraint the original data set was curated under.
type createUserRequest struct {
	Name        string `json:"name"        validate:"required"`
	Classes     string `json:"Classes"     validate:"required,min=2"`
	RoomNumbers string `json:"RoomNumbers" validate:"omitempty"`
}

func (r *createUserRequest) sanitize() {
	r.Name = cleanString(r.Name)
	r.Classes = cleanString(r.Classes)
	r.RoomNumbers = cleanString(r.RoomNumbers)
}

// usersListResponse wraps listing results the way API clients consume them:
// an array for collection reads, a single object for by-id reads.
type usersListResponse struct {
	UsersList any `json:"users_list"`
}

func usersList(users []domain.User) usersListResponse {
	return usersListResponse{UsersList: users}
}

func singleUser(user *domain.User) usersListResponse {
	return usersListResponse{UsersList: user}
}
