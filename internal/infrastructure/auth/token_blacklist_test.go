package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/corebank/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := auth.NewInMemoryTokenBlacklist()

	blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	err = blacklist.AddToBlacklist(ctx, "jti-1", time.Minute)
	require.NoError(t, err)

	blacklisted, err = blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Other JTIs are unaffected
	blacklisted, err = blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_Expiry(t *testing.T) {
	ctx := context.Background()
	blacklist := auth.NewInMemoryTokenBlacklist()

	err := blacklist.AddToBlacklist(ctx, "jti-expired", -time.Second)
	require.NoError(t, err)

	// Entries past their TTL are treated as not blacklisted
	blacklisted, err := blacklist.IsBlacklisted(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
