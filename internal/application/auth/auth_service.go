package auth

import (
	"context"
	"errors"
	"time"

	"github.com/corebank/backend/internal/domain/credential"
	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/domain/shared"
	infraauth "github.com/corebank/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles customer authentication operations
type AuthService struct {
	loginRepo    credential.LoginRepository
	customerRepo customer.CustomerRepository
	jwtService   *infraauth.JWTService
	blacklist    infraauth.TokenBlacklist
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	loginRepo credential.LoginRepository,
	customerRepo customer.CustomerRepository,
	jwtService *infraauth.JWTService,
	blacklist infraauth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		loginRepo:    loginRepo,
		customerRepo: customerRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger,
	}
}

// Login authenticates a customer and returns a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("username", input.Username))

	login, err := s.loginRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Warn("Login not found during login", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !login.CanLogin() {
		s.logger.Warn("Login attempt for disabled credentials", zap.String("username", input.Username))
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Login has been disabled. Please contact the bank")
	}

	if !login.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	c, err := s.customerRepo.FindByID(ctx, login.CustomerID)
	if err != nil {
		s.logger.Error("Failed to load customer for login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load customer record")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(infraauth.GenerateTokenInput{
		CustomerID: login.CustomerID,
		Username:   login.Username,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	login.RecordLogin()
	if err := s.loginRepo.Save(ctx, login); err != nil {
		// Don't fail the login over bookkeeping
		s.logger.Error("Failed to record successful login", zap.Error(err))
	}

	s.logger.Info("Customer logged in successfully",
		zap.String("username", login.Username),
		zap.String("customer_id", login.CustomerID.String()),
		zap.String("client_ip", input.IP))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Customer: CustomerInfo{
			ID:             c.ID,
			Username:       login.Username,
			FullName:       c.FullName,
			IdentityNumber: c.IdentityNumber,
		},
	}, nil
}

// RefreshToken refreshes the access token using a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	customerID, err := claims.GetCustomerUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid customer ID in token")
	}

	if revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err != nil {
		s.logger.Error("Blacklist check failed during refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify token status")
	} else if revoked {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	login, err := s.loginRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Warn("Login not found during token refresh", zap.String("customer_id", customerID.String()))
		return nil, shared.NewDomainError("NOT_FOUND", "Login not found")
	}

	if !login.CanLogin() {
		s.logger.Warn("Token refresh for disabled credentials", zap.String("customer_id", customerID.String()))
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Login is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, login.Username)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed successfully", zap.String("customer_id", customerID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the presented tokens by blacklisting them until expiry
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessToken != "" {
		if claims, err := s.jwtService.ValidateAccessToken(input.AccessToken); err == nil {
			if err := s.revokeClaims(ctx, claims); err != nil {
				return err
			}
		}
	}

	if input.RefreshToken != "" {
		if claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken); err == nil {
			if err := s.revokeClaims(ctx, claims); err != nil {
				return err
			}
		}
	}

	return nil
}

// revokeClaims blacklists the token by its JTI for its remaining lifetime
func (s *AuthService) revokeClaims(ctx context.Context, claims *infraauth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}
	return nil
}

// GetCurrentCustomer retrieves the authenticated customer's information
func (s *AuthService) GetCurrentCustomer(ctx context.Context, input GetCurrentCustomerInput) (*CurrentCustomerResult, error) {
	c, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
	}

	login, err := s.loginRepo.FindByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Login not found")
	}

	return &CurrentCustomerResult{
		Customer: CustomerInfo{
			ID:             c.ID,
			Username:       login.Username,
			FullName:       c.FullName,
			IdentityNumber: c.IdentityNumber,
		},
	}, nil
}

// mapTokenError maps JWT validation errors to domain errors
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, infraauth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, infraauth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, infraauth.ErrInvalidToken), errors.Is(err, infraauth.ErrInvalidTokenType), errors.Is(err, infraauth.ErrInvalidClaims):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate token")
	}
}
