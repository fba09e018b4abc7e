package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEmailAlreadyExists indicates that another user already registered this email
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrApplicationNotFound indicates that job application was not found
	ErrApplicationNotFound = errors.New("application not found")

	// ErrNotOwner indicates that the record belongs to a different user
	ErrNotOwner = errors.New("record owned by another user")

	// ErrProductNotFound indicates that product was not found
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound indicates that cart has no entry for the product
	ErrCartItemNotFound = errors.New("cart item not found")
)
