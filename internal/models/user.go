package models

import "time"

// User roles understood by the shop service. The tracker service does not
// use roles and leaves the field empty.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an account in either service.
// The password is stored only as a bcrypt hash; plaintext never reaches
// storage or logs.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	Role         string    `json:"role,omitempty"`
	PasswordHash string    `json:"hashed_password"`
	CreatedAt    time.Time `json:"created_at"`
}
