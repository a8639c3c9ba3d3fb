package ports

import "context"

// AuthService implements signup and signin. Both return a signed access
// token on success; signup auto-logs the new account in.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}
