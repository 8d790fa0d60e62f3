// Package directory adapts the customer repository to the provisioning
// workflow's customer directory port.
package directory

import (
	"context"

	"github.com/corebank/backend/internal/application/provisioning"
	"github.com/corebank/backend/internal/domain/customer"
	"github.com/google/uuid"
)

// RepositoryDirectory implements provisioning.CustomerDirectory backed by
// the durable customer repository.
type RepositoryDirectory struct {
	customers customer.CustomerRepository
}

// NewRepositoryDirectory creates a new RepositoryDirectory
func NewRepositoryDirectory(customers customer.CustomerRepository) *RepositoryDirectory {
	return &RepositoryDirectory{customers: customers}
}

// FindByIdentity looks up a customer by national identity number.
// The repository's shared.ErrNotFound passes through unchanged.
func (d *RepositoryDirectory) FindByIdentity(ctx context.Context, identityNumber string) (*provisioning.CustomerRecord, error) {
	c, err := d.customers.FindByIdentityNumber(ctx, identityNumber)
	if err != nil {
		return nil, err
	}
	return &provisioning.CustomerRecord{
		CustomerID:     c.ID,
		IdentityNumber: c.IdentityNumber,
		FullName:       c.FullName,
	}, nil
}

// CreateCustomer registers a new customer for the identity number.
// The unique index on identity_number surfaces as shared.ErrAlreadyExists.
func (d *RepositoryDirectory) CreateCustomer(ctx context.Context, identityNumber string, profile provisioning.PartyProfile) (uuid.UUID, error) {
	c, err := customer.NewCustomer(identityNumber, profile.FullName, profile.Address, profile.Phone, profile.DateOfBirth)
	if err != nil {
		return uuid.Nil, err
	}
	if err := d.customers.Save(ctx, c); err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}
