package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrBuildingNotFound   = errors.New("building not found")
	ErrDrawingNotFound    = errors.New("drawing not found")
)
