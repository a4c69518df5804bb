// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archetype

import "errors"

// Error taxonomy for the quiz-to-profile pipeline. Callers classify with
// errors.Is and must not retry validation or authorization failures;
// conflicts may be retried after a fresh read, unavailability with backoff.
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("authorization failed")
	ErrConflict      = errors.New("concurrent write conflict")
	ErrUnavailable   = errors.New("store unavailable")
	ErrNotFound      = errors.New("profile not found")
)
