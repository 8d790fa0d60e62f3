package credential

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogin(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates login with hashed password", func(t *testing.T) {
		login, err := NewLogin(customerID, "nimal.perera", "s3cretPass99")

		require.NoError(t, err)
		assert.Equal(t, customerID, login.CustomerID)
		assert.Equal(t, "nimal.perera", login.Username)
		assert.NotEqual(t, "s3cretPass99", login.PasswordHash)
		assert.Equal(t, LoginStatusActive, login.Status)
		assert.True(t, login.CanLogin())
	})

	t.Run("lowercases the username", func(t *testing.T) {
		login, err := NewLogin(customerID, "Nimal.Perera", "s3cretPass99")

		require.NoError(t, err)
		assert.Equal(t, "nimal.perera", login.Username)
	})

	t.Run("fails with nil customer ID", func(t *testing.T) {
		login, err := NewLogin(uuid.Nil, "nimal", "s3cretPass99")

		assert.Error(t, err)
		assert.Nil(t, login)
	})

	t.Run("fails with short username", func(t *testing.T) {
		login, err := NewLogin(customerID, "ab", "s3cretPass99")

		assert.Error(t, err)
		assert.Nil(t, login)
	})

	t.Run("fails with invalid username characters", func(t *testing.T) {
		login, err := NewLogin(customerID, "nimal perera!", "s3cretPass99")

		assert.Error(t, err)
		assert.Nil(t, login)
	})

	t.Run("fails with short password", func(t *testing.T) {
		login, err := NewLogin(customerID, "nimal", "short")

		assert.Error(t, err)
		assert.Nil(t, login)
	})
}

func TestLogin_VerifyPassword(t *testing.T) {
	login, err := NewLogin(uuid.New(), "nimal", "s3cretPass99")
	require.NoError(t, err)

	assert.True(t, login.VerifyPassword("s3cretPass99"))
	assert.False(t, login.VerifyPassword("wrongPass99"))
}

func TestLogin_Disable(t *testing.T) {
	login, err := NewLogin(uuid.New(), "nimal", "s3cretPass99")
	require.NoError(t, err)

	require.NoError(t, login.Disable())
	assert.False(t, login.CanLogin())

	err = login.Disable()
	assert.Error(t, err)
}

func TestLogin_RecordLogin(t *testing.T) {
	login, err := NewLogin(uuid.New(), "nimal", "s3cretPass99")
	require.NoError(t, err)
	require.Nil(t, login.LastLoginAt)

	login.RecordLogin()
	assert.NotNil(t, login.LastLoginAt)
}
