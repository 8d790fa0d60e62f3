package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	dob := time.Date(1977, 5, 12, 0, 0, 0, 0, time.UTC)

	t.Run("creates customer successfully", func(t *testing.T) {
		c, err := NewCustomer("771234567V", "Nimal Perera", "12 Galle Road, Colombo", "0771234567", dob)

		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.Equal(t, "771234567V", c.IdentityNumber)
		assert.Equal(t, "Nimal Perera", c.FullName)
		assert.Equal(t, CustomerStatusActive, c.Status)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("accepts the 12 digit identity format", func(t *testing.T) {
		c, err := NewCustomer("197712345678", "Nimal Perera", "", "", dob)

		require.NoError(t, err)
		assert.Equal(t, "197712345678", c.IdentityNumber)
	})

	t.Run("uppercases the identity letter", func(t *testing.T) {
		c, err := NewCustomer("771234567v", "Nimal Perera", "", "", dob)

		require.NoError(t, err)
		assert.Equal(t, "771234567V", c.IdentityNumber)
	})

	t.Run("fails with empty identity number", func(t *testing.T) {
		c, err := NewCustomer("", "Nimal Perera", "", "", dob)

		assert.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with malformed identity number", func(t *testing.T) {
		c, err := NewCustomer("12345", "Nimal Perera", "", "", dob)

		assert.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "9 digits")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		c, err := NewCustomer("771234567V", "", "", "", dob)

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("fails with future date of birth", func(t *testing.T) {
		c, err := NewCustomer("771234567V", "Nimal Perera", "", "", time.Now().Add(24*time.Hour))

		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestValidateIdentityNumber(t *testing.T) {
	valid := []string{"771234567V", "851234568X", "200012345678"}
	for _, nic := range valid {
		assert.NoError(t, ValidateIdentityNumber(nic), nic)
	}

	invalid := []string{"", "771234567", "771234567Z", "77123456V", "20001234567", "abcdefghiV"}
	for _, nic := range invalid {
		assert.Error(t, ValidateIdentityNumber(nic), nic)
	}
}

func TestCustomer_Close(t *testing.T) {
	c, err := NewCustomer("771234567V", "Nimal Perera", "", "", time.Time{})
	require.NoError(t, err)

	require.NoError(t, c.Close())
	assert.Equal(t, CustomerStatusClosed, c.Status)
	assert.False(t, c.IsActive())

	err = c.Close()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already closed")
}

func TestCustomer_UpdateContact(t *testing.T) {
	c, err := NewCustomer("771234567V", "Nimal Perera", "old address", "011", time.Time{})
	require.NoError(t, err)

	version := c.Version
	require.NoError(t, c.UpdateContact("45 Kandy Road, Kadawatha", "0112233445"))
	assert.Equal(t, "45 Kandy Road, Kadawatha", c.Address)
	assert.Equal(t, "0112233445", c.Phone)
	assert.Equal(t, version+1, c.Version)
}
