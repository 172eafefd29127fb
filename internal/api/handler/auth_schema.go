package handler

// messageResponse is the standard envelope for status messages and errors.
type messageResponse struct {
	Message string `json:"message"`
}

// tokenResponse is returned on successful signin.
type tokenResponse struct {
	Token string `json:"token"`
}

type signupRequest struct {
	Email     string `json:"email"     validate:"required,min=3,max=100,email"`
	Password  string `json:"password"  validate:"required,min=3,max=100"`
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName"  validate:"required,min=1,max=100"`
}

// signinRequest carries raw credentials. No schema validation is applied to
// signin; a wrong shape simply fails the credential lookup.
type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
