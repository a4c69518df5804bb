// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the archetype.ProfileStore interface.

# Implementations

  - SQLStore: database/sql backed, runs against PostgreSQL and SQLite
  - MemStore: in-process map, used by tests and ephemeral deployments

# Error Mapping

Both implementations speak the archetype package's error taxonomy:

  - missing profile: archetype.ErrNotFound
  - lost conditional write: archetype.ErrConflict
  - backend outage or exhausted retries: archetype.ErrUnavailable

# Retries

SQLStore retries each call up to three times with a short linear backoff
before reporting ErrUnavailable. Calls are bounded by a five second
timeout independent of the caller's context.
*/
package store
