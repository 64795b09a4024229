package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dash:session:" // Key prefix for cached values: dash:session:{key}

// RedisStore caches the session token and theme preference in Redis so they
// survive dashboard restarts. Values expire with the session TTL.
type RedisStore struct {
	client   *redis.Client
	tokenKey string
	themeKey string
	ttl      time.Duration
}

func NewRedisStore(client *redis.Client, tokenKey, themeKey string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:   client,
		tokenKey: tokenKey,
		themeKey: themeKey,
		ttl:      ttl,
	}
}

func (s *RedisStore) GetToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.tokenKey)
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, keyPrefix+s.tokenKey, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearToken(ctx context.Context) error {
	if err := s.client.Del(ctx, keyPrefix+s.tokenKey).Err(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

func (s *RedisStore) GetTheme(ctx context.Context) (string, error) {
	return s.get(ctx, s.themeKey)
}

func (s *RedisStore) SetTheme(ctx context.Context, theme string) error {
	// The theme preference outlives any single session, so no TTL.
	if err := s.client.Set(ctx, keyPrefix+s.themeKey, theme, 0).Err(); err != nil {
		return fmt.Errorf("failed to store theme: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return val, nil
}
