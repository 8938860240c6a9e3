package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewJWTStore("test-secret", time.Hour)

	token, err := s.Create(ctx, 77)
	require.NoError(t, err)

	id, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)

	assert.NoError(t, s.Destroy(ctx, token))
}

func TestJWTStore_Rejects(t *testing.T) {
	ctx := context.Background()

	// подписан другим секретом
	token, err := NewJWTStore("secret-A", time.Hour).Create(ctx, 5)
	require.NoError(t, err)
	_, err = NewJWTStore("secret-B", time.Hour).Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// истёк
	expired, err := NewJWTStore("s", -time.Minute).Create(ctx, 5)
	require.NoError(t, err)
	_, err = NewJWTStore("s", time.Hour).Resolve(ctx, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewJWTStore("s", time.Hour).Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newMiniredisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, mr := newMiniredisStore(t, time.Hour)

	token, err := s.Create(ctx, 42)
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+token))

	id, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NoError(t, s.Destroy(ctx, token))
	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// повторный Destroy не ошибка
	assert.NoError(t, s.Destroy(ctx, token))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newMiniredisStore(t, time.Minute)

	token, err := s.Create(ctx, 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRedisStore_RejectsMalformedToken(t *testing.T) {
	s, _ := newMiniredisStore(t, time.Minute)
	_, err := s.Resolve(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRedisStore_Close(t *testing.T) {
	s, _ := newMiniredisStore(t, time.Minute)

	var c io.Closer = s
	require.NoError(t, c.Close())

	_, err := s.Create(context.Background(), 1)
	assert.Error(t, err)
}
