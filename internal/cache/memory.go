// Package cache хранит короткоживущие токены доступа к внешним API.
package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryTokenCache кэш токенов в памяти процесса
type MemoryTokenCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryTokenCache создает пустой кэш
func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get возвращает токен, если он есть и не истек
func (c *MemoryTokenCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}

	return entry.value, true, nil
}

// Set сохраняет токен на ttl
func (c *MemoryTokenCache) Set(_ context.Context, key, token string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		delete(c.entries, key)
		return nil
	}
	c.entries[key] = memoryEntry{value: token, expiresAt: c.now().Add(ttl)}
	return nil
}

// Delete сбрасывает токен
func (c *MemoryTokenCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
