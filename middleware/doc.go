// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Responses

JSONResponse and ErrorResponse write JSON bodies with the right
Content-Type. WriteDomainError translates the archetype error taxonomy
into HTTP statuses:

  - ErrValidation: 400
  - ErrAuthorization: 401
  - ErrNotFound: 404
  - ErrConflict: 409
  - ErrUnavailable: 503
  - anything else: 500, with the detail logged server side only

# Requests

ParseJSONBody decodes JSON request bodies. BearerToken pulls the token
out of the Authorization header. GetClientIP resolves the caller's IP
through X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.

# Wrappers

WithLogging logs request start and completion with duration. CORS allows
cross-origin requests and answers preflights.
*/
package middleware
