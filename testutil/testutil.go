// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mirrorwell/archetype-api/auth"
	"github.com/mirrorwell/archetype-api/cliparse"
	"github.com/mirrorwell/archetype-api/db"
	"github.com/mirrorwell/archetype-api/models"
	"github.com/mirrorwell/archetype-api/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call returns an isolated database; closing it discards
// everything.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// In-memory SQLite is per-connection; a second pooled connection
	// would see an empty database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3410,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		UserTokenSalt: "test-token-salt",
		SessionTTL:    30 * time.Minute,
	}
}

// TestToken returns a valid bearer token for userID under the test salt
func TestToken(userID string) string {
	return auth.GenerateUserToken(userID, GetTestConfig().UserTokenSalt)
}

// SeedProfile writes a baseline profile for userID into the store and
// returns it
func SeedProfile(t *testing.T, profiles *store.MemStore, userID string) models.ArchetypeProfile {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	profile := models.ArchetypeProfile{
		UserID:             userID,
		PrimaryArchetype:   "sage",
		SecondaryArchetype: "caregiver",
		Confidence:         0.5,
		Answers: []models.QuizAnswer{
			{QuestionID: 1, Question: "What guides your decisions?", Type: models.AnswerTypeText, Text: "Understanding", AnsweredAt: now},
		},
		QuizVersion: models.QuizVersionEnhanced,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := profiles.Upsert(context.Background(), &profile, nil); err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}

	return profile
}

// QuizAnswers returns a minimal valid raw answer set for submissions
func QuizAnswers() []models.RawQuizAnswer {
	return []models.RawQuizAnswer{
		{QuestionID: 1, Question: "What guides your decisions?", Answer: json.RawMessage(`"Understanding"`), Type: models.AnswerTypeText},
		{QuestionID: 2, Question: "Pick the image that speaks to you", Answer: json.RawMessage(`{"label": "library", "image_url": "https://img.example/library.png"}`), Type: models.AnswerTypeImage},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
