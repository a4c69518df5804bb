// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token format")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateUserToken creates a bearer token of the form "userID.signature"
// where the signature is an HMAC of the user ID under the server salt.
// Deterministic and verifiable without a token store.
func GenerateUserToken(userID, salt string) string {
	return userID + "." + sign(userID, salt)
}

// ResolveUserToken validates a bearer token and returns the user ID it
// carries. Malformed or forged tokens return ErrInvalidToken.
func ResolveUserToken(token, salt string) (string, error) {
	userID, sig, ok := strings.Cut(token, ".")
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(sign(userID, salt))) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func sign(userID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(userID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
