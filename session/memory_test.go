// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := models.Session{SessionID: "s1", UserID: "user-1", Archetype: "sage", Confidence: 0.5}
	if err := s.Put(ctx, sess); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != "user-1" || got.Archetype != "sage" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, archetype.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	if err := s.Put(ctx, models.Session{SessionID: "s1", UserID: "user-1"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	current = current.Add(30 * time.Second)
	if _, err := s.Get(ctx, "s1"); err != nil {
		t.Fatalf("session expired too early: %v", err)
	}

	current = current.Add(time.Minute)
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, archetype.ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestMemoryStoreLazyEviction(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Put(ctx, models.Session{SessionID: id, UserID: "user-1"}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	// The next Put after expiry sweeps out the dead entries.
	current = current.Add(2 * time.Minute)
	if err := s.Put(ctx, models.Session{SessionID: "d", UserID: "user-1"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	s.mu.Lock()
	n := len(s.entries)
	s.mu.Unlock()
	if n != 1 {
		t.Errorf("expected expired entries to be evicted, map holds %d", n)
	}
}
