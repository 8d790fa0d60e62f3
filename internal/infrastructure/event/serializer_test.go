package event

import (
	"testing"
	"time"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSerializer_RoundTrip(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterAllEvents(serializer)

	custID := uuid.New()
	original := &customer.CustomerRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			customer.EventTypeCustomerRegistered, customer.AggregateTypeCustomer, custID),
		CustomerID:     custID,
		IdentityNumber: "881234567V",
		FullName:       "Nimal Perera",
	}

	payload, err := serializer.Serialize(original)
	require.NoError(t, err)

	restored, err := serializer.Deserialize(customer.EventTypeCustomerRegistered, payload)
	require.NoError(t, err)

	event, ok := restored.(*customer.CustomerRegisteredEvent)
	require.True(t, ok)
	assert.Equal(t, original.EventID(), event.EventID())
	assert.Equal(t, custID, event.CustomerID)
	assert.Equal(t, "881234567V", event.IdentityNumber)
	assert.Equal(t, "Nimal Perera", event.FullName)
	assert.WithinDuration(t, original.OccurredAt(), event.OccurredAt(), time.Second)
}

func TestEventSerializer_AccountOpenedRoundTrip(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterAllEvents(serializer)

	accID := uuid.New()
	original := &account.AccountOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			account.EventTypeAccountOpened, account.AggregateTypeAccount, accID),
		AccountID:       accID,
		AccountNumber:   "JA00000042",
		PrimaryHolderID: uuid.New(),
		JointHolderID:   uuid.New(),
		InitialBalance:  decimal.RequireFromString("2500.50"),
	}

	payload, err := serializer.Serialize(original)
	require.NoError(t, err)

	restored, err := serializer.Deserialize(account.EventTypeAccountOpened, payload)
	require.NoError(t, err)

	event, ok := restored.(*account.AccountOpenedEvent)
	require.True(t, ok)
	assert.Equal(t, "JA00000042", event.AccountNumber)
	assert.True(t, event.InitialBalance.Equal(original.InitialBalance))
}

func TestEventSerializer_UnknownType(t *testing.T) {
	serializer := NewEventSerializer()

	_, err := serializer.Deserialize("SomethingElse", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")
}

func TestEventSerializer_MalformedPayload(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterAllEvents(serializer)

	_, err := serializer.Deserialize(customer.EventTypeCustomerRegistered, []byte(`{not json`))
	require.Error(t, err)
}

func TestRegisterAllEvents(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterAllEvents(serializer)

	for _, eventType := range []string{
		customer.EventTypeCustomerRegistered,
		customer.EventTypeCustomerClosed,
		account.EventTypeAccountOpened,
		account.EventTypeAccountClosed,
	} {
		assert.True(t, serializer.IsRegistered(eventType), eventType)
	}
	assert.False(t, serializer.IsRegistered("OrderShipped"))
}
