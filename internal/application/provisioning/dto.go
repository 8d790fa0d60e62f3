package provisioning

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyProfile holds the personal details needed to register a new customer
type PartyProfile struct {
	FullName    string
	Address     string
	Phone       string
	DateOfBirth time.Time
}

// PartyInput identifies one of the two parties of a provisioning request.
// Profile is required only when the party turns out not to exist yet.
type PartyInput struct {
	IdentityNumber string
	Profile        *PartyProfile
}

// ProvisioningRequest is the input to the joint account provisioning workflow
type ProvisioningRequest struct {
	Party1         PartyInput
	Party2         PartyInput
	InitialBalance decimal.Decimal
}

// NewCustomerCredentials carries the one-time plaintext credentials issued for
// a newly registered customer. The password is disclosed exactly once in the
// workflow response and is never persisted or logged in plaintext.
type NewCustomerCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PartyOutcome describes the provisioning outcome for one party.
// Credentials is set only when the customer was created in this invocation.
type PartyOutcome struct {
	CustomerID     uuid.UUID               `json:"customer_id"`
	IdentityNumber string                  `json:"identity_number"`
	Credentials    *NewCustomerCredentials `json:"credentials,omitempty"`
}

// ProvisioningResult is the terminal value of a successful workflow run
type ProvisioningResult struct {
	AccountID     uuid.UUID    `json:"account_id"`
	AccountNumber string       `json:"account_number"`
	Party1        PartyOutcome `json:"party1"`
	Party2        PartyOutcome `json:"party2"`
}
