package auth

import (
	"context"
	"testing"
	"time"

	"github.com/corebank/backend/internal/domain/credential"
	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/domain/shared"
	infraauth "github.com/corebank/backend/internal/infrastructure/auth"
	"github.com/corebank/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockLoginRepository is a mock implementation of credential.LoginRepository
type MockLoginRepository struct {
	mock.Mock
}

func (m *MockLoginRepository) FindByID(ctx context.Context, id uuid.UUID) (*credential.Login, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Login), args.Error(1)
}

func (m *MockLoginRepository) FindByUsername(ctx context.Context, username string) (*credential.Login, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Login), args.Error(1)
}

func (m *MockLoginRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*credential.Login, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Login), args.Error(1)
}

func (m *MockLoginRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoginRepository) Save(ctx context.Context, l *credential.Login) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of customer.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIdentityNumber(ctx context.Context, identityNumber string) (*customer.Customer, error) {
	args := m.Called(ctx, identityNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByIdentityNumber(ctx context.Context, identityNumber string) (bool, error) {
	args := m.Called(ctx, identityNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestJWTService() *infraauth.JWTService {
	return infraauth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "corebank-test",
		MaxRefreshCount:        5,
	})
}

type authFixture struct {
	service   *AuthService
	logins    *MockLoginRepository
	customers *MockCustomerRepository
	blacklist *infraauth.InMemoryTokenBlacklist
}

func newAuthFixture() *authFixture {
	logins := new(MockLoginRepository)
	customers := new(MockCustomerRepository)
	blacklist := infraauth.NewInMemoryTokenBlacklist()

	return &authFixture{
		service:   NewAuthService(logins, customers, newTestJWTService(), blacklist, zap.NewNop()),
		logins:    logins,
		customers: customers,
		blacklist: blacklist,
	}
}

func newTestLogin(t *testing.T, customerID uuid.UUID, username, password string) *credential.Login {
	t.Helper()
	login, err := credential.NewLogin(customerID, username, password)
	require.NoError(t, err)
	return login
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("881234567V", "Amara Silva", "12 Lake Rd", "0771234567", time.Date(1988, 5, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func TestAuthService_Login(t *testing.T) {
	t.Run("authenticates with valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")

		f.logins.On("FindByUsername", mock.Anything, "amara.silva").Return(login, nil)
		f.customers.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.logins.On("Save", mock.Anything, login).Return(nil)

		result, err := f.service.Login(context.Background(), LoginInput{
			Username: "amara.silva",
			Password: "s3cureP@ssword",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, c.ID, result.Customer.ID)
		assert.Equal(t, "amara.silva", result.Customer.Username)
		assert.Equal(t, "881234567V", result.Customer.IdentityNumber)
		assert.NotNil(t, login.LastLoginAt)
		f.logins.AssertExpectations(t)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		f := newAuthFixture()

		f.logins.On("FindByUsername", mock.Anything, "nobody").Return(nil, shared.ErrNotFound)

		result, err := f.service.Login(context.Background(), LoginInput{
			Username: "nobody",
			Password: "whatever",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")

		f.logins.On("FindByUsername", mock.Anything, "amara.silva").Return(login, nil)

		result, err := f.service.Login(context.Background(), LoginInput{
			Username: "amara.silva",
			Password: "wrong-password",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		f.customers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects disabled login", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")
		require.NoError(t, login.Disable())

		f.logins.On("FindByUsername", mock.Anything, "amara.silva").Return(login, nil)

		result, err := f.service.Login(context.Background(), LoginInput{
			Username: "amara.silva",
			Password: "s3cureP@ssword",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DISABLED", domainErr.Code)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("issues a new token pair", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")

		f.logins.On("FindByUsername", mock.Anything, "amara.silva").Return(login, nil)
		f.customers.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.logins.On("Save", mock.Anything, login).Return(nil)

		loginResult, err := f.service.Login(context.Background(), LoginInput{
			Username: "amara.silva",
			Password: "s3cureP@ssword",
		})
		require.NoError(t, err)

		f.logins.On("FindByCustomerID", mock.Anything, c.ID).Return(login, nil)

		refreshed, err := f.service.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: loginResult.RefreshToken,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEmpty(t, refreshed.RefreshToken)
		assert.NotEqual(t, loginResult.RefreshToken, refreshed.RefreshToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		f := newAuthFixture()

		result, err := f.service.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: "not-a-token",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("rejects revoked refresh token", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")

		f.logins.On("FindByUsername", mock.Anything, "amara.silva").Return(login, nil)
		f.customers.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.logins.On("Save", mock.Anything, login).Return(nil)

		loginResult, err := f.service.Login(context.Background(), LoginInput{
			Username: "amara.silva",
			Password: "s3cureP@ssword",
		})
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(context.Background(), LogoutInput{
			RefreshToken: loginResult.RefreshToken,
		}))

		result, err := f.service.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: loginResult.RefreshToken,
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_REVOKED", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("blacklists both tokens", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")

		f.logins.On("FindByUsername", mock.Anything, "amara.silva").Return(login, nil)
		f.customers.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.logins.On("Save", mock.Anything, login).Return(nil)

		loginResult, err := f.service.Login(context.Background(), LoginInput{
			Username: "amara.silva",
			Password: "s3cureP@ssword",
		})
		require.NoError(t, err)

		err = f.service.Logout(context.Background(), LogoutInput{
			AccessToken:  loginResult.AccessToken,
			RefreshToken: loginResult.RefreshToken,
		})

		assert.NoError(t, err)

		jwtService := newTestJWTService()
		accessClaims, err := jwtService.ValidateAccessToken(loginResult.AccessToken)
		require.NoError(t, err)

		revoked, err := f.blacklist.IsBlacklisted(context.Background(), accessClaims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("ignores invalid tokens", func(t *testing.T) {
		f := newAuthFixture()

		err := f.service.Logout(context.Background(), LogoutInput{
			AccessToken:  "garbage",
			RefreshToken: "garbage",
		})

		assert.NoError(t, err)
	})
}

func TestAuthService_GetCurrentCustomer(t *testing.T) {
	t.Run("returns customer info", func(t *testing.T) {
		f := newAuthFixture()
		c := newTestCustomer(t)
		login := newTestLogin(t, c.ID, "amara.silva", "s3cureP@ssword")

		f.customers.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.logins.On("FindByCustomerID", mock.Anything, c.ID).Return(login, nil)

		result, err := f.service.GetCurrentCustomer(context.Background(), GetCurrentCustomerInput{CustomerID: c.ID})

		require.NoError(t, err)
		assert.Equal(t, "Amara Silva", result.Customer.FullName)
		assert.Equal(t, "amara.silva", result.Customer.Username)
	})

	t.Run("fails for unknown customer", func(t *testing.T) {
		f := newAuthFixture()
		id := uuid.New()

		f.customers.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		result, err := f.service.GetCurrentCustomer(context.Background(), GetCurrentCustomerInput{CustomerID: id})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
