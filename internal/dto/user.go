package dto

import "time"

// User is the read shape for a staff account. The password hash never
// leaves the service layer.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUser carries the fields for a new staff account. The plaintext
// password is hashed by the service before anything touches storage.
type CreateUser struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

// UpdateUser is a partial patch over a staff account. Passwords change
// only through the dedicated change-password operation.
type UpdateUser struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
}
