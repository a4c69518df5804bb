// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and validation.

# User Tokens

Bearer tokens are "userID.signature", where the signature is an
HMAC-SHA256 of the user ID under the server salt:

	token := auth.GenerateUserToken("user-42", cfg.UserTokenSalt)
	userID, err := auth.ResolveUserToken(token, cfg.UserTokenSalt)

Tokens are deterministic and stateless: no token table, nothing to
revoke individually. Rotating the salt invalidates every token at once.

# IP Hashing

HashIP produces a salted, truncated hash of a client IP for audit
logging without storing the raw address.
*/
package auth
