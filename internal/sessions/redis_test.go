package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestRevokeAndIsRevoked(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	jti := "1700000000-abcd1234"
	assert.False(t, IsRevoked(ctx, jti))

	require.NoError(t, Revoke(ctx, jti, time.Hour))
	assert.True(t, IsRevoked(ctx, jti))

	// The denylist entry expires with the token.
	mr.FastForward(time.Hour + time.Second)
	assert.False(t, IsRevoked(ctx, jti))
}

func TestRevoke_NonPositiveTTL(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	// An already-expired token needs no denylist entry.
	require.NoError(t, Revoke(ctx, "expired-jti", 0))
	require.NoError(t, Revoke(ctx, "expired-jti", -time.Minute))
	assert.Empty(t, mr.Keys())
}

func TestRevoke_EmptyJTI(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, Revoke(ctx, "", time.Hour))
	assert.Empty(t, mr.Keys())
	assert.False(t, IsRevoked(ctx, ""))
}

func TestRevocation_FailsOpenWithoutRedis(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	// Without Redis a logout is a silent no-op and no token is reported
	// revoked; valid users are never locked out by a missing denylist.
	assert.NoError(t, Revoke(ctx, "some-jti", time.Hour))
	assert.False(t, IsRevoked(ctx, "some-jti"))
}

func TestInitRedis_InvalidURL(t *testing.T) {
	t.Cleanup(func() { SetClient(nil) })

	InitRedis("redis://[invalid")
	assert.Nil(t, GetClient())
}
