package repository

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const purgeSchedule = "@every 1m"

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository, used when no Redis address
// is configured. Entries expire after ttl like RedisCache; expired entries
// miss on Get and are dropped by a cron job. A zero ttl never expires.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
	cron *cron.Cron
	now  func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := &MemoryCache{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
	if ttl > 0 {
		m.cron = cron.New()
		if _, err := m.cron.AddFunc(purgeSchedule, m.purgeExpired); err != nil {
			panic(err)
		}
		m.cron.Start()
	}
	return m
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		// puede haberse reescrito entre ambos locks
		if current, ok := m.data[key]; ok && current.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) purgeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close stops the purge job and waits for a running purge to finish.
func (m *MemoryCache) Close() error {
	if m.cron != nil {
		<-m.cron.Stop().Done()
	}
	return nil
}
