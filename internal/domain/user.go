package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. A user owns zero or more tasks;
// ownership is enforced by the service layer, not here.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email and password
// hash. It generates a new UUID for the user ID. Timestamps are stamped by
// the persistence layer on write, not here.
func NewUser(username, email, hashedPassword string) *User {
	return &User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
	}
}
