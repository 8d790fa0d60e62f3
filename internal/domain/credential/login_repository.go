package credential

import (
	"context"

	"github.com/google/uuid"
)

// LoginRepository defines the interface for login persistence
type LoginRepository interface {
	// FindByID finds a login by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Login, error)

	// FindByUsername finds a login by username
	FindByUsername(ctx context.Context, username string) (*Login, error)

	// FindByCustomerID finds the login belonging to a customer
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*Login, error)

	// ExistsByUsername checks whether a username is already taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Save persists a login (insert or update)
	Save(ctx context.Context, login *Login) error
}
