// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/models"
)

// MemoryStore keeps sessions in process memory with a fixed TTL.
// Expired entries are evicted lazily on access; there is no background
// sweeper, so memory is only reclaimed as the map is touched.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	sess      models.Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	s.entries[sess.SessionID] = memoryEntry{
		sess:      sess,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return models.Session{}, fmt.Errorf("%w: session %s", archetype.ErrNotFound, sessionID)
	}
	return entry.sess, nil
}

func (s *MemoryStore) evictExpired() {
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
