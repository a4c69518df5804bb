// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as RFC 3339 text so the same schema and the same
// equality-based conditional update run unchanged on both PostgreSQL and
// SQLite. JSON payloads are stored as text for the same reason.
const schema = `
-- Archetype profiles, one document per user
CREATE TABLE IF NOT EXISTS archetype_profile (
    user_id TEXT PRIMARY KEY,
    primary_archetype TEXT NOT NULL,
    secondary_archetype TEXT NOT NULL DEFAULT '',
    confidence REAL NOT NULL CHECK (confidence >= 0 AND confidence <= 1),
    detailed_result TEXT,
    answers TEXT NOT NULL,
    quiz_version TEXT NOT NULL DEFAULT '1.0',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_archetype_profile_primary ON archetype_profile(primary_archetype);
`
