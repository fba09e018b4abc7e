package api

import "github.com/go-playground/validator/v10"

// RegisterRequest is the body of POST /register/ on the tracker service.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

// Validate checks the request against its field constraints.
func (r *RegisterRequest) Validate() error {
	return validator.New().Struct(r)
}

// UserResponse is the public view of an account; it never carries the
// password hash.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// TokenResponse is returned by POST /login/ on both services.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
