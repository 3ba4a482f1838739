package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Storage adapts a redis client to fiber.Storage so middleware state (rate
// limiter counters) is shared between instances.
type Storage struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func NewStorage(client *redis.Client, prefix string) *Storage {
	return &Storage{
		client:  client,
		prefix:  prefix,
		timeout: 2 * time.Second,
	}
}

func (s *Storage) key(k string) string {
	return s.prefix + k
}

func (s *Storage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get returns nil, nil for a missing key.
func (s *Storage) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache value: %w", err)
	}
	return val, nil
}

// Set stores val; a zero exp means no expiration.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if len(key) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes every key under the storage prefix.
func (s *Storage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) > 0 {
		return s.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// HealthCheck pings the server.
func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}
