// Package ledger adapts the account repository to the provisioning
// workflow's account ledger port.
package ledger

import (
	"context"

	"github.com/corebank/backend/internal/application/provisioning"
	"github.com/corebank/backend/internal/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepositoryLedger implements provisioning.AccountLedger backed by the
// durable account repository.
type RepositoryLedger struct {
	accounts account.AccountRepository
}

// NewRepositoryLedger creates a new RepositoryLedger
func NewRepositoryLedger(accounts account.AccountRepository) *RepositoryLedger {
	return &RepositoryLedger{accounts: accounts}
}

// OpenJointAccount allocates an account number, opens the account, and
// persists it. The two holders must already exist as customers.
func (l *RepositoryLedger) OpenJointAccount(ctx context.Context, primaryHolderID, jointHolderID uuid.UUID, initialBalance decimal.Decimal) (*provisioning.AccountRef, error) {
	number, err := l.accounts.NextAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	a, err := account.NewJointAccount(number, primaryHolderID, jointHolderID, initialBalance)
	if err != nil {
		return nil, err
	}

	if err := l.accounts.Save(ctx, a); err != nil {
		return nil, err
	}

	return &provisioning.AccountRef{
		AccountID:     a.ID,
		AccountNumber: a.AccountNumber,
	}, nil
}
