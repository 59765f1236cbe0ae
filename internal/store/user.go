package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Implementations stamp CreatedAt/UpdatedAt on every write.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrUsernameExists or ErrEmailExists on uniqueness violations.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their exact username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByEmail retrieves a user by their exact email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByIdentifier retrieves the single user whose username or email
	// equals the supplied identifier.
	// Returns ErrUserNotFound if no user matches and ErrAmbiguousIdentifier
	// if more than one does.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}
