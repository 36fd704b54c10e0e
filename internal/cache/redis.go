package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "storefront:token:"

// RedisTokenCache кэш токенов в Redis, общий для всех реплик
type RedisTokenCache struct {
	client *redis.Client
}

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return client, nil
}

// NewRedisTokenCache создает кэш поверх готового клиента
func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

// Get возвращает токен. Истечение обеспечивает TTL ключа
func (c *RedisTokenCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: failed to get %q: %w", key, err)
	}

	return value, true, nil
}

// Set сохраняет токен на ttl
func (c *RedisTokenCache) Set(ctx context.Context, key, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return c.Delete(ctx, key)
	}
	if err := c.client.Set(ctx, keyPrefix+key, token, ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set %q: %w", key, err)
	}
	return nil
}

// Delete сбрасывает токен
func (c *RedisTokenCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("cache: failed to delete %q: %w", key, err)
	}
	return nil
}
