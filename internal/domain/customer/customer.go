package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/corebank/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive CustomerStatus = "active"
	CustomerStatusClosed CustomerStatus = "closed"
)

// nicRegex matches the national identity number formats accepted by the bank:
// the legacy 9-digit-plus-letter form and the new 12-digit form.
var nicRegex = regexp.MustCompile(`^(\d{9}[VvXx]|\d{12})$`)

// Customer represents a bank customer.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseAggregateRoot
	IdentityNumber string
	FullName       string
	Address        string
	Phone          string
	DateOfBirth    time.Time
	Status         CustomerStatus
}

// NewCustomer creates a new customer with required fields
func NewCustomer(identityNumber, fullName, address, phone string, dateOfBirth time.Time) (*Customer, error) {
	identityNumber = strings.ToUpper(strings.TrimSpace(identityNumber))
	if err := ValidateIdentityNumber(identityNumber); err != nil {
		return nil, err
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if !dateOfBirth.IsZero() && dateOfBirth.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_DATE_OF_BIRTH", "Date of birth cannot be in the future")
	}

	c := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		IdentityNumber:    identityNumber,
		FullName:          strings.TrimSpace(fullName),
		Address:           strings.TrimSpace(address),
		Phone:             strings.TrimSpace(phone),
		DateOfBirth:       dateOfBirth,
		Status:            CustomerStatusActive,
	}

	c.AddDomainEvent(NewCustomerRegisteredEvent(c))

	return c, nil
}

// UpdateContact updates the customer's address and phone
func (c *Customer) UpdateContact(address, phone string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}

	c.Address = strings.TrimSpace(address)
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Close closes the customer record
func (c *Customer) Close() error {
	if c.Status == CustomerStatusClosed {
		return shared.NewDomainError("ALREADY_CLOSED", "Customer is already closed")
	}

	c.Status = CustomerStatusClosed
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerClosedEvent(c))

	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// ValidateIdentityNumber validates a national identity number
func ValidateIdentityNumber(identityNumber string) error {
	identityNumber = strings.TrimSpace(identityNumber)
	if identityNumber == "" {
		return shared.NewDomainError("INVALID_IDENTITY_NUMBER", "Identity number cannot be empty")
	}
	if !nicRegex.MatchString(identityNumber) {
		return shared.NewDomainError("INVALID_IDENTITY_NUMBER", "Identity number must be 9 digits followed by V/X or 12 digits")
	}
	return nil
}

func validateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	return nil
}
