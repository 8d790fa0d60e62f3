package provisioning

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRecord is the directory's view of an existing customer
type CustomerRecord struct {
	CustomerID     uuid.UUID
	IdentityNumber string
	FullName       string
}

// CustomerDirectory is the collaborator holding durable customer records.
// The directory enforces identity number uniqueness; this workflow never
// retries a create across that boundary.
type CustomerDirectory interface {
	// FindByIdentity looks up a customer by national identity number.
	// Returns shared.ErrNotFound when no customer matches; any other error
	// means the directory could not be consulted.
	FindByIdentity(ctx context.Context, identityNumber string) (*CustomerRecord, error)

	// CreateCustomer registers a new customer for the identity number.
	// Returns shared.ErrAlreadyExists when the identity number is taken.
	CreateCustomer(ctx context.Context, identityNumber string, profile PartyProfile) (uuid.UUID, error)
}

// IssuedCredentials is a one-time disclosure of a generated username and
// plaintext password. Callers must not log or re-serialize it beyond the
// immediate response.
type IssuedCredentials struct {
	Username string
	Password string
}

// CredentialIssuer generates login credentials for newly created customers.
// Issuance creates a durable login record and is not idempotent: it must be
// called at most once per new customer per invocation.
type CredentialIssuer interface {
	IssueLogin(ctx context.Context, customerID uuid.UUID, fullName string) (*IssuedCredentials, error)
}

// AccountRef identifies an opened account
type AccountRef struct {
	AccountID     uuid.UUID
	AccountNumber string
}

// AccountLedger is the collaborator holding durable account state
type AccountLedger interface {
	// OpenJointAccount opens one shared account attributed to the two holders
	OpenJointAccount(ctx context.Context, primaryHolderID, jointHolderID uuid.UUID, initialBalance decimal.Decimal) (*AccountRef, error)
}
