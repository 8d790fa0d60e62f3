package customer

import (
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCustomer = "Customer"

// Event type constants
const (
	EventTypeCustomerRegistered = "CustomerRegistered"
	EventTypeCustomerClosed     = "CustomerClosed"
)

// CustomerRegisteredEvent is published when a new customer is registered
type CustomerRegisteredEvent struct {
	shared.BaseDomainEvent
	CustomerID     uuid.UUID `json:"customer_id"`
	IdentityNumber string    `json:"identity_number"`
	FullName       string    `json:"full_name"`
}

// NewCustomerRegisteredEvent creates a new CustomerRegisteredEvent
func NewCustomerRegisteredEvent(c *Customer) *CustomerRegisteredEvent {
	return &CustomerRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerRegistered, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		IdentityNumber:  c.IdentityNumber,
		FullName:        c.FullName,
	}
}

// CustomerClosedEvent is published when a customer record is closed
type CustomerClosedEvent struct {
	shared.BaseDomainEvent
	CustomerID     uuid.UUID `json:"customer_id"`
	IdentityNumber string    `json:"identity_number"`
}

// NewCustomerClosedEvent creates a new CustomerClosedEvent
func NewCustomerClosedEvent(c *Customer) *CustomerClosedEvent {
	return &CustomerClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerClosed, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		IdentityNumber:  c.IdentityNumber,
	}
}
