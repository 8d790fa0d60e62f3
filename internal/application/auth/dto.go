package auth

import (
	"time"

	"github.com/google/uuid"
)

// LoginInput contains the input for customer login
type LoginInput struct {
	Username string
	Password string
	IP       string // Client IP for login tracking
}

// CustomerInfo contains basic customer information returned after login
type CustomerInfo struct {
	ID             uuid.UUID
	Username       string
	FullName       string
	IdentityNumber string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Customer              CustomerInfo
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the refreshed token pair
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the tokens to revoke on logout
type LogoutInput struct {
	AccessToken  string
	RefreshToken string
}

// GetCurrentCustomerInput identifies the authenticated customer
type GetCurrentCustomerInput struct {
	CustomerID uuid.UUID
}

// CurrentCustomerResult contains the authenticated customer's information
type CurrentCustomerResult struct {
	Customer CustomerInfo
}
