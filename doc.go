// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the archetype API server.

The service turns personality quiz submissions into persistent archetype
profiles and opens conversation sessions greeted in the voice of the
caller's archetype.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:archetypes.db USER_TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 3410 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - USER_TOKEN_SALT (--token-salt): secret for user token HMAC

Optional settings:

  - PORT (-p): server port (default: 3410)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REDIS_URL (--redis): Redis backend for sessions
  - SESSION_TTL (--session-ttl): session lifetime (default: 30m)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (quiz, sessions, catalog)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and error helpers
  - models: Request/response and domain types
  - archetype: scoring, profile building, greetings
  - store: profile persistence (SQL and in-memory)
  - session: session storage (memory and Redis)
  - auth: Token generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
