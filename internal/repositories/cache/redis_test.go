package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := NewRedisClient(&RedisConfig{Addr: mr.Addr()})
	storage := NewStorage(client, "limiter:")
	t.Cleanup(func() { _ = storage.Close() })
	return storage, mr
}

func TestStorage_SetGetDelete(t *testing.T) {
	s, mr := setupTestStorage(t)

	require.NoError(t, s.Set("10.0.0.1", []byte("3"), time.Minute))
	assert.True(t, mr.Exists("limiter:10.0.0.1"))

	val, err := s.Get("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	require.NoError(t, s.Delete("10.0.0.1"))
	val, err = s.Get("10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorage_MissingKeyIsNil(t *testing.T) {
	s, _ := setupTestStorage(t)

	val, err := s.Get("nobody")
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorage_Expiration(t *testing.T) {
	s, mr := setupTestStorage(t)

	require.NoError(t, s.Set("k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	val, err := s.Get("k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorage_ResetOnlyTouchesPrefix(t *testing.T) {
	s, mr := setupTestStorage(t)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, mr.Set("other:key", "keep"))

	require.NoError(t, s.Reset())

	assert.False(t, mr.Exists("limiter:a"))
	assert.False(t, mr.Exists("limiter:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestStorage_HealthCheck(t *testing.T) {
	s, mr := setupTestStorage(t)
	assert.NoError(t, s.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, s.HealthCheck(context.Background()))
}
