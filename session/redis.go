// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/models"
)

// keyPrefix namespaces session keys so the service can share a Redis
// instance with other tenants.
const keyPrefix = "archetype:session:"

// RedisStore keeps sessions in Redis with a fixed TTL. Expiry is handled
// by Redis itself, so unlike MemoryStore there is nothing to evict.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sess.SessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", archetype.ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (models.Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, fmt.Errorf("%w: session %s", archetype.ErrNotFound, sessionID)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: redis get: %v", archetype.ErrUnavailable, err)
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return models.Session{}, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}
	return sess, nil
}
