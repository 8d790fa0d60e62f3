package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentNotification struct {
	customerID uuid.UUID
	subject    string
	body       string
}

type fakeSender struct {
	sent []sentNotification
	err  error
}

func (s *fakeSender) Send(ctx context.Context, customerID uuid.UUID, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentNotification{customerID: customerID, subject: subject, body: body})
	return nil
}

func newRegisteredEvent() *customer.CustomerRegisteredEvent {
	custID := uuid.New()
	return &customer.CustomerRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			customer.EventTypeCustomerRegistered, customer.AggregateTypeCustomer, custID),
		CustomerID:     custID,
		IdentityNumber: "881234567V",
		FullName:       "Amara Silva",
	}
}

func newOpenedEvent() *account.AccountOpenedEvent {
	accID := uuid.New()
	return &account.AccountOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			account.EventTypeAccountOpened, account.AggregateTypeAccount, accID),
		AccountID:       accID,
		AccountNumber:   "JA00000009",
		PrimaryHolderID: uuid.New(),
		JointHolderID:   uuid.New(),
		InitialBalance:  decimal.NewFromInt(1000),
	}
}

func TestOnboardingHandler_EventTypes(t *testing.T) {
	handler := NewOnboardingHandler(&fakeSender{}, zap.NewNop())
	assert.ElementsMatch(t,
		[]string{customer.EventTypeCustomerRegistered, account.EventTypeAccountOpened},
		handler.EventTypes(),
	)
}

func TestOnboardingHandler_CustomerRegistered(t *testing.T) {
	sender := &fakeSender{}
	handler := NewOnboardingHandler(sender, zap.NewNop())

	event := newRegisteredEvent()
	err := handler.Handle(t.Context(), event)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, event.CustomerID, sender.sent[0].customerID)
	assert.Equal(t, "Welcome to Corebank", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "Amara Silva")
}

func TestOnboardingHandler_AccountOpened(t *testing.T) {
	sender := &fakeSender{}
	handler := NewOnboardingHandler(sender, zap.NewNop())

	event := newOpenedEvent()
	err := handler.Handle(t.Context(), event)

	require.NoError(t, err)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, event.PrimaryHolderID, sender.sent[0].customerID)
	assert.Equal(t, event.JointHolderID, sender.sent[1].customerID)
	for _, n := range sender.sent {
		assert.Equal(t, "Joint account opened", n.subject)
		assert.Contains(t, n.body, "JA00000009")
		assert.Contains(t, n.body, "1000.00")
	}
}

func TestOnboardingHandler_SenderFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unavailable")}
	handler := NewOnboardingHandler(sender, zap.NewNop())

	err := handler.Handle(t.Context(), newRegisteredEvent())
	assert.Error(t, err)
}

func TestOnboardingHandler_UnexpectedEvent(t *testing.T) {
	handler := NewOnboardingHandler(&fakeSender{}, zap.NewNop())

	event := &customer.CustomerClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			customer.EventTypeCustomerClosed, customer.AggregateTypeCustomer, uuid.New()),
	}
	err := handler.Handle(t.Context(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected event type")
}

func TestLogSender_Send(t *testing.T) {
	sender := NewLogSender(zap.NewNop())
	err := sender.Send(t.Context(), uuid.New(), "subject", "body")
	assert.NoError(t, err)
}
