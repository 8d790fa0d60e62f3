// Package account implements read-side queries over joint accounts.
package account

import (
	"context"
	"time"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// AccountService handles account queries
type AccountService struct {
	accounts account.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accounts account.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// GetByID returns the account with the given ID
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "get_by_id")
	defer span.End()

	telemetry.SetAttributes(span, telemetry.SpanAttrAccountID, id.String())

	a, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return toAccountView(a), nil
}

// GetByNumber returns the account with the given account number
func (s *AccountService) GetByNumber(ctx context.Context, accountNumber string) (*AccountView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "get_by_number")
	defer span.End()

	telemetry.SetAttributes(span, telemetry.SpanAttrAccountNumber, accountNumber)

	a, err := s.accounts.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return toAccountView(a), nil
}

// GetBalance returns the current balance of the account
func (s *AccountService) GetBalance(ctx context.Context, id uuid.UUID) (*BalanceView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "get_balance")
	defer span.End()

	telemetry.SetAttributes(span, telemetry.SpanAttrAccountID, id.String())

	a, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return &BalanceView{
		AccountID:     a.ID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		AsOf:          time.Now(),
	}, nil
}

// ListByCustomer returns all accounts the customer holds, alone or jointly.
// The caller must already be authorized for the customer.
func (s *AccountService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]AccountView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "list_by_customer")
	defer span.End()

	telemetry.SetAttributes(span, telemetry.SpanAttrCustomerID, customerID.String())

	if customerID == uuid.Nil {
		err := shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer ID cannot be empty")
		telemetry.RecordError(span, err)
		return nil, err
	}

	accounts, err := s.accounts.FindByHolder(ctx, customerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	views := make([]AccountView, len(accounts))
	for i := range accounts {
		views[i] = *toAccountView(&accounts[i])
	}
	return views, nil
}

func toAccountView(a *account.Account) *AccountView {
	return &AccountView{
		AccountID:       a.ID,
		AccountNumber:   a.AccountNumber,
		PrimaryHolderID: a.PrimaryHolderID,
		JointHolderID:   a.JointHolderID,
		Balance:         a.Balance,
		Status:          string(a.Status),
		OpenedAt:        a.OpenedAt,
	}
}
