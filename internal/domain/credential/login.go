package credential

import (
	"regexp"
	"strings"
	"time"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LoginStatus represents the status of a login
type LoginStatus string

const (
	LoginStatusActive   LoginStatus = "active"
	LoginStatusDisabled LoginStatus = "disabled"
)

// Password cost for bcrypt
const bcryptCost = 12

var usernameRegex = regexp.MustCompile(`^[a-z0-9_\-.]+$`)

// Login represents a customer's system access credentials.
// Only the bcrypt hash of the password is ever stored.
type Login struct {
	shared.BaseAggregateRoot
	CustomerID   uuid.UUID
	Username     string
	PasswordHash string
	Status       LoginStatus
	LastLoginAt  *time.Time
}

// NewLogin creates a new login for a customer, hashing the given password
func NewLogin(customerID uuid.UUID, username, password string) (*Login, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer ID cannot be empty")
	}
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Login{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Username:          username,
		PasswordHash:      string(hash),
		Status:            LoginStatusActive,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (l *Login) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(password)) == nil
}

// RecordLogin records a successful login
func (l *Login) RecordLogin() {
	now := time.Now()
	l.LastLoginAt = &now
	l.UpdatedAt = now
	l.IncrementVersion()
}

// Disable disables the login
func (l *Login) Disable() error {
	if l.Status == LoginStatusDisabled {
		return shared.NewDomainError("ALREADY_DISABLED", "Login is already disabled")
	}

	l.Status = LoginStatusDisabled
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// CanLogin returns true if the login may be used
func (l *Login) CanLogin() bool {
	return l.Status == LoginStatusActive
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain lowercase letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}
