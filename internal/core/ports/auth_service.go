package ports

import "context"

// AuthService implements the signup and login use-cases. Both return a signed
// bearer token whose verified identity is the username.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}
