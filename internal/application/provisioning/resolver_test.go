package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentityResolver_Resolve_ExistingCustomer(t *testing.T) {
	directory := new(MockCustomerDirectory)
	resolver := NewIdentityResolver(directory)

	customerID := uuid.New()
	directory.On("FindByIdentity", mock.Anything, "881234567V").
		Return(&CustomerRecord{
			CustomerID:     customerID,
			IdentityNumber: "881234567V",
			FullName:       "Amara Silva",
		}, nil).Once()

	party, err := resolver.Resolve(context.Background(), "881234567V")
	require.NoError(t, err)

	assert.True(t, party.Exists())
	assert.Equal(t, customerID, party.CustomerID)
	assert.Equal(t, "Amara Silva", party.FullName)
	assert.Equal(t, "881234567V", party.IdentityNumber)
	directory.AssertExpectations(t)
}

func TestIdentityResolver_Resolve_Miss(t *testing.T) {
	directory := new(MockCustomerDirectory)
	resolver := NewIdentityResolver(directory)

	directory.On("FindByIdentity", mock.Anything, "199012345678").
		Return(nil, shared.ErrNotFound).Once()

	party, err := resolver.Resolve(context.Background(), "199012345678")
	require.NoError(t, err)

	// A miss is a normal outcome, not an error
	assert.False(t, party.Exists())
	assert.Equal(t, "199012345678", party.IdentityNumber)
}

func TestIdentityResolver_Resolve_WrappedMiss(t *testing.T) {
	directory := new(MockCustomerDirectory)
	resolver := NewIdentityResolver(directory)

	directory.On("FindByIdentity", mock.Anything, "199012345678").
		Return(nil, errors.Join(errors.New("lookup"), shared.ErrNotFound)).Once()

	party, err := resolver.Resolve(context.Background(), "199012345678")
	require.NoError(t, err)
	assert.False(t, party.Exists())
}

func TestIdentityResolver_Resolve_DirectoryFailure(t *testing.T) {
	directory := new(MockCustomerDirectory)
	resolver := NewIdentityResolver(directory)

	directory.On("FindByIdentity", mock.Anything, "881234567V").
		Return(nil, errors.New("connection refused")).Once()

	_, err := resolver.Resolve(context.Background(), "881234567V")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory lookup failed")
}
