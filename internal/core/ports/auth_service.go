package ports

import "context"

// SignupInput carries the validated signup payload into the service layer.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements signup and signin for a single credential namespace.
// Two instances run side by side, one per namespace, each bound to its own
// repository and signing secret.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) error
	// Signin returns a signed bearer token carrying the account id as its
	// subject. Tokens carry no expiry.
	Signin(ctx context.Context, email, password string) (string, error)
}
