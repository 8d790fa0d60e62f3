package account

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	// FindByID finds an account by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByAccountNumber finds an account by its account number
	FindByAccountNumber(ctx context.Context, accountNumber string) (*Account, error)

	// FindByHolder finds all accounts held by the given customer
	FindByHolder(ctx context.Context, customerID uuid.UUID) ([]Account, error)

	// Save persists an account (insert or update)
	Save(ctx context.Context, account *Account) error

	// NextAccountNumber allocates the next unused account number
	NextAccountNumber(ctx context.Context) (string, error)

	// Count returns the total number of accounts
	Count(ctx context.Context) (int64, error)
}
