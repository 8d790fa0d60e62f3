package handler

import "time"

// LoginRequest is the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AuthCustomerResponse describes the authenticated customer
type AuthCustomerResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	IdentityNumber string `json:"identity_number"`
}

// LoginResponse is the login response payload
type LoginResponse struct {
	Token    TokenResponse        `json:"token"`
	Customer AuthCustomerResponse `json:"customer"`
}

// RefreshTokenRequest is the token refresh request payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse is the token refresh response payload
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// LogoutRequest optionally carries the refresh token to revoke alongside
// the access token taken from the Authorization header
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutResponse is the logout response payload
type LogoutResponse struct {
	Message string `json:"message"`
}

// CurrentCustomerResponse is the /auth/me response payload
type CurrentCustomerResponse struct {
	Customer AuthCustomerResponse `json:"customer"`
}
