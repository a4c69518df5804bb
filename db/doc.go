// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - archetype_profile: One profile document per user, keyed by user_id

# Portability

The service runs against PostgreSQL in production and SQLite for local
development and tests. To keep one schema for both engines, timestamps
are RFC 3339 text and JSON payloads (answers, detailed_result) are text
columns marshaled by the store layer.

# Indexes

  - archetype_profile.primary_archetype for archetype breakdown queries
*/
package db
