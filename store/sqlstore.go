// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/models"
)

const (
	// queryTimeout bounds every individual database call so a stalled
	// backend surfaces as ErrUnavailable instead of a hung request.
	queryTimeout = 5 * time.Second

	// maxAttempts is the retry budget for transient database errors.
	maxAttempts = 3

	retryBackoff = 100 * time.Millisecond
)

// SQLStore persists archetype profiles in a SQL database. It works
// unchanged against PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite)
// thanks to the text-based schema in the db package.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get returns the profile for userID, or archetype.ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, userID string) (*models.ArchetypeProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		profile        models.ArchetypeProfile
		detailedResult sql.NullString
		answers        string
		createdAt      string
		updatedAt      string
	)

	err := s.withRetry(ctx, "get profile", func() error {
		return s.db.QueryRowContext(ctx, `
			SELECT user_id, primary_archetype, secondary_archetype, confidence,
			       detailed_result, answers, quiz_version, created_at, updated_at
			FROM archetype_profile WHERE user_id = $1
		`, userID).Scan(
			&profile.UserID, &profile.PrimaryArchetype, &profile.SecondaryArchetype,
			&profile.Confidence, &detailedResult, &answers, &profile.QuizVersion,
			&createdAt, &updatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no profile for user", archetype.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(answers), &profile.Answers); err != nil {
		return nil, fmt.Errorf("corrupt answers column for user %s: %w", userID, err)
	}
	if detailedResult.Valid && detailedResult.String != "" {
		profile.DetailedResult = &models.DetailedResult{}
		if err := json.Unmarshal([]byte(detailedResult.String), profile.DetailedResult); err != nil {
			return nil, fmt.Errorf("corrupt detailed_result column for user %s: %w", userID, err)
		}
	}
	if profile.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if profile.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert writes the profile. A non-nil prevUpdatedAt makes the write
// conditional on the stored row still carrying that timestamp, so two
// overlapping submissions cannot silently clobber each other.
func (s *SQLStore) Upsert(ctx context.Context, profile *models.ArchetypeProfile, prevUpdatedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	answers, err := json.Marshal(profile.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	var detailedResult sql.NullString
	if profile.DetailedResult != nil {
		raw, err := json.Marshal(profile.DetailedResult)
		if err != nil {
			return fmt.Errorf("failed to marshal detailed result: %w", err)
		}
		detailedResult = sql.NullString{String: string(raw), Valid: true}
	}

	if prevUpdatedAt == nil {
		return s.withRetry(ctx, "upsert profile", func() error {
			_, err := s.db.ExecContext(ctx, `
				INSERT INTO archetype_profile
					(user_id, primary_archetype, secondary_archetype, confidence,
					 detailed_result, answers, quiz_version, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (user_id) DO UPDATE SET
					primary_archetype = EXCLUDED.primary_archetype,
					secondary_archetype = EXCLUDED.secondary_archetype,
					confidence = EXCLUDED.confidence,
					detailed_result = EXCLUDED.detailed_result,
					answers = EXCLUDED.answers,
					quiz_version = EXCLUDED.quiz_version,
					updated_at = EXCLUDED.updated_at
			`, profile.UserID, profile.PrimaryArchetype, profile.SecondaryArchetype,
				profile.Confidence, detailedResult, string(answers), profile.QuizVersion,
				formatTimestamp(profile.CreatedAt), formatTimestamp(profile.UpdatedAt))
			return err
		})
	}

	// Conditional overwrite: the row must still carry the timestamp the
	// caller read. Timestamp equality is a string compare, which is why
	// the column stores canonical RFC 3339 text.
	var affected int64
	err = s.withRetry(ctx, "conditional update profile", func() error {
		// Placeholders stay in appearance order; SQLite indexes $N
		// parameters by first occurrence, not by number.
		res, err := s.db.ExecContext(ctx, `
			UPDATE archetype_profile SET
				primary_archetype = $1,
				secondary_archetype = $2,
				confidence = $3,
				detailed_result = $4,
				answers = $5,
				quiz_version = $6,
				updated_at = $7
			WHERE user_id = $8 AND updated_at = $9
		`, profile.PrimaryArchetype, profile.SecondaryArchetype,
			profile.Confidence, detailedResult, string(answers), profile.QuizVersion,
			formatTimestamp(profile.UpdatedAt), profile.UserID, formatTimestamp(*prevUpdatedAt))
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: profile changed since it was read", archetype.ErrConflict)
	}
	return nil
}

// withRetry runs fn up to maxAttempts times, backing off between tries.
// Exhausted retries and context expiry come back as ErrUnavailable so
// callers can map them to a 503.
func (s *SQLStore) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if ctx.Err() != nil {
			break
		}
		slog.Warn("database call failed, retrying", "op", op, "attempt", attempt, "error", err)

		select {
		case <-time.After(retryBackoff * time.Duration(attempt)):
		case <-ctx.Done():
		}
	}
	return fmt.Errorf("%w: %s: %v", archetype.ErrUnavailable, op, err)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt timestamp %q: %w", s, err)
	}
	return t, nil
}
