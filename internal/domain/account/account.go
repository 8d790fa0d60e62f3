package account

import (
	"strings"
	"time"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatus represents the status of an account
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusClosed AccountStatus = "closed"
)

// Account represents a joint bank account held by exactly two customers.
// It is the aggregate root for account-related operations.
type Account struct {
	shared.BaseAggregateRoot
	AccountNumber   string
	PrimaryHolderID uuid.UUID
	JointHolderID   uuid.UUID
	Balance         decimal.Decimal
	Status          AccountStatus
	OpenedAt        time.Time
}

// NewJointAccount creates a new joint account for two distinct holders
func NewJointAccount(accountNumber string, primaryHolderID, jointHolderID uuid.UUID, initialBalance decimal.Decimal) (*Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	if primaryHolderID == uuid.Nil || jointHolderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOLDER", "Both holder IDs are required")
	}
	if primaryHolderID == jointHolderID {
		return nil, shared.NewDomainError("DUPLICATE_HOLDER", "A joint account requires two distinct holders")
	}
	if !initialBalance.IsPositive() {
		return nil, shared.NewDomainError("INVALID_BALANCE", "Initial balance must be positive")
	}

	a := &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AccountNumber:     accountNumber,
		PrimaryHolderID:   primaryHolderID,
		JointHolderID:     jointHolderID,
		Balance:           initialBalance,
		Status:            AccountStatusActive,
		OpenedAt:          time.Now(),
	}

	a.AddDomainEvent(NewAccountOpenedEvent(a))

	return a, nil
}

// Close closes the account. The balance must be zero.
func (a *Account) Close() error {
	if a.Status == AccountStatusClosed {
		return shared.NewDomainError("ALREADY_CLOSED", "Account is already closed")
	}
	if !a.Balance.IsZero() {
		return shared.NewDomainError("NONZERO_BALANCE", "Account balance must be zero before closing")
	}

	a.Status = AccountStatusClosed
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAccountClosedEvent(a))

	return nil
}

// HasHolder returns true if the given customer is one of the two holders
func (a *Account) HasHolder(customerID uuid.UUID) bool {
	return a.PrimaryHolderID == customerID || a.JointHolderID == customerID
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
