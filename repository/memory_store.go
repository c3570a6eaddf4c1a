package repository

import (
	"context"
	"sync"
	"time"
)

var _ KVStore = (*MemoryStore)(nil)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero: never
	seq       uint64    // write order, oldest is evicted first
}

// MemoryStore is an in-memory implementation of KVStore. A store built with
// NewMemoryCache expires keys after a TTL and holds at most maxEntries keys.
type MemoryStore struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	seq        uint64
	now        func() time.Time
}

// NewMemoryStore creates an empty in-memory store without expiry or size bound.
func NewMemoryStore() *MemoryStore {
	return NewMemoryCache(0, 0)
}

// NewMemoryCache creates a store whose keys expire after ttl and which
// evicts the oldest key once maxEntries are held. Zero disables either bound.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	entry, ok := s.data[key]
	s.mu.RUnlock()

	if !ok || s.expired(entry, s.now()) {
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.data[key]; !exists && s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		s.evict(now)
	}

	s.seq++
	entry := memoryEntry{value: value, seq: s.seq}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}
	s.data[key] = entry
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Len reports how many live keys are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	n := 0
	for _, entry := range s.data {
		if !s.expired(entry, now) {
			n++
		}
	}
	return n
}

// evict drops expired keys, then the oldest one if the store is still full.
// Callers hold s.mu.
func (s *MemoryStore) evict(now time.Time) {
	for key, entry := range s.data {
		if s.expired(entry, now) {
			delete(s.data, key)
		}
	}
	if len(s.data) < s.maxEntries {
		return
	}

	var (
		oldestKey string
		oldestSeq uint64
		found     bool
	)
	for key, entry := range s.data {
		if !found || entry.seq < oldestSeq {
			oldestKey, oldestSeq, found = key, entry.seq, true
		}
	}
	if found {
		delete(s.data, oldestKey)
	}
}

func (s *MemoryStore) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}
