package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/web3-freelance/internal/goroutine"
	"github.com/ignatzorin/web3-freelance/internal/logger"
	"github.com/ignatzorin/web3-freelance/internal/metrics"
)

// Cache хранит JSON-представления значений с TTL.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	InvalidateByPrefix(ctx context.Context, prefix string) error
}

// Ключи кэша публичных подборок.
const (
	JobsPrefix        = "jobs:"
	NewestJobsKey     = JobsPrefix + "newest"
	TopFreelancersKey = JobsPrefix + "top_freelancers"
	cleanupInterval   = 5 * time.Minute
)

// GetOrSet читает значение из кэша или вычисляет и сохраняет его.
// Ошибки кэша не ломают запрос: значение просто вычисляется заново.
func GetOrSet[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var cached T
	if c != nil {
		if found, err := c.Get(ctx, key, &cached); err == nil && found {
			metrics.ObserveCache(key, true)
			return cached, nil
		}
		metrics.ObserveCache(key, false)
	}

	value, err := fn()
	if err != nil {
		return value, err
	}

	if c != nil {
		_ = c.Set(ctx, key, value, ttl)
	}
	return value, nil
}

// InvalidateJobListings сбрасывает подборки заданий после записи.
// Ошибка кэша не отменяет запись: подборки устареют не дольше чем на TTL.
func InvalidateJobListings(ctx context.Context, c Cache) {
	if c == nil {
		return
	}
	if err := c.InvalidateByPrefix(ctx, JobsPrefix); err != nil {
		logger.Get().WithFields(logrus.Fields{"error": err}).Warn("Failed to invalidate job listings cache")
	}
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache - кэш в памяти процесса для запуска без Redis.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

// NewMemoryCache создаёт кэш и запускает фоновую очистку до отмены ctx.
func NewMemoryCache(ctx context.Context) *MemoryCache {
	mc := &MemoryCache{entries: make(map[string]*memoryEntry)}
	goroutine.SafeGoWithContext(ctx, "memory-cache-cleanup", mc.cleanup)
	return mc
}

func (mc *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	mc.mu.RLock()
	entry, ok := mc.entries[key]
	mc.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (mc *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.entries[key] = &memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (mc *MemoryCache) InvalidateByPrefix(_ context.Context, prefix string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for key := range mc.entries {
		if strings.HasPrefix(key, prefix) {
			delete(mc.entries, key)
		}
	}
	return nil
}

func (mc *MemoryCache) cleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mc.removeExpired(time.Now())
		}
	}
}

func (mc *MemoryCache) removeExpired(now time.Time) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for key, entry := range mc.entries {
		if now.After(entry.expiresAt) {
			delete(mc.entries, key)
		}
	}
}
