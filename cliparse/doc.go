// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flag and environment parsing.

# Configuration

Flags take precedence over environment variables:

	-p / PORT                  server port (default 3410)
	-d / DATABASE_URL          database connection string (required)
	-t / DATABASE_TYPE         sqlite or postgres (default sqlite)
	-redis / REDIS_URL         Redis URL for sessions (optional)
	-session-ttl / SESSION_TTL session lifetime (default 30m)
	-token-salt / USER_TOKEN_SALT  HMAC salt for user tokens (required)

Secrets should come from the environment in production; the flags exist
for local development.
*/
package cliparse
