// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP endpoints.

# Handlers

  - QuizHandler: quiz submission and profile retrieval
  - SessionHandler: conversation session creation and lookup
  - ArchetypeHandler: the public archetype catalog

# Conventions

Handlers are structs with dependencies injected through constructors.
Each exported method serves one route. Identity comes from the
Authorization bearer token; a missing or forged token is a 401 before
any body parsing. Domain errors flow out through
middleware.WriteDomainError, which owns the error-to-status mapping.
*/
package handlers
