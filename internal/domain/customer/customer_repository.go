package customer

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByIdentityNumber finds a customer by national identity number
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*Customer, error)

	// ExistsByIdentityNumber checks whether a customer with the identity number exists
	ExistsByIdentityNumber(ctx context.Context, identityNumber string) (bool, error)

	// Save persists a customer (insert or update)
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of customers
	Count(ctx context.Context) (int64, error)
}
