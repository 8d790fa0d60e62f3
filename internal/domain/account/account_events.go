package account

import (
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeAccount = "Account"

// Event type constants
const (
	EventTypeAccountOpened = "AccountOpened"
	EventTypeAccountClosed = "AccountClosed"
)

// AccountOpenedEvent is published when a joint account is opened
type AccountOpenedEvent struct {
	shared.BaseDomainEvent
	AccountID       uuid.UUID       `json:"account_id"`
	AccountNumber   string          `json:"account_number"`
	PrimaryHolderID uuid.UUID       `json:"primary_holder_id"`
	JointHolderID   uuid.UUID       `json:"joint_holder_id"`
	InitialBalance  decimal.Decimal `json:"initial_balance"`
}

// NewAccountOpenedEvent creates a new AccountOpenedEvent
func NewAccountOpenedEvent(a *Account) *AccountOpenedEvent {
	return &AccountOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountOpened, AggregateTypeAccount, a.ID),
		AccountID:       a.ID,
		AccountNumber:   a.AccountNumber,
		PrimaryHolderID: a.PrimaryHolderID,
		JointHolderID:   a.JointHolderID,
		InitialBalance:  a.Balance,
	}
}

// AccountClosedEvent is published when an account is closed
type AccountClosedEvent struct {
	shared.BaseDomainEvent
	AccountID     uuid.UUID `json:"account_id"`
	AccountNumber string    `json:"account_number"`
}

// NewAccountClosedEvent creates a new AccountClosedEvent
func NewAccountClosedEvent(a *Account) *AccountClosedEvent {
	return &AccountClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountClosed, AggregateTypeAccount, a.ID),
		AccountID:       a.ID,
		AccountNumber:   a.AccountNumber,
	}
}
