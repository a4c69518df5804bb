// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the archetype.SessionStore interface.

# Implementations

  - MemoryStore: in-process map with lazy TTL eviction, the default
  - RedisStore: go-redis backed, for deployments with more than one replica

Both report missing or expired sessions as archetype.ErrNotFound.
RedisStore reports backend failures as archetype.ErrUnavailable.
*/
package session
