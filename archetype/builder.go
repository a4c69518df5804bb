// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archetype

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mirrorwell/archetype-api/models"
)

// LegacyConfidence is assigned to profiles built from legacy submissions
// that carry a single archetype name and no score set. It stands for
// "unknown but quiz-derived", not for low confidence.
const LegacyConfidence = 0.85

// ProfileStore is the document-store boundary the pipeline reads and
// writes. Implementations must bound every call with a timeout and report
// outages as ErrUnavailable, missing documents as ErrNotFound, and lost
// conditional writes as ErrConflict.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.ArchetypeProfile, error)

	// Upsert writes the profile. When prevUpdatedAt is non-nil the write is
	// conditional on the stored document still carrying that timestamp;
	// contention surfaces as ErrConflict. A nil prevUpdatedAt write is
	// last-writer-wins.
	Upsert(ctx context.Context, profile *models.ArchetypeProfile, prevUpdatedAt *time.Time) error
}

// BuildRequest carries one quiz submission into the profile builder.
// Either Scores (enhanced format) or Archetype (legacy format) must be set.
type BuildRequest struct {
	UserID         string
	Answers        []models.RawQuizAnswer
	Archetype      string
	Scores         models.ScoreSet
	DetailedResult *models.DetailedResult
	QuizVersion    string
}

// BuildResult reports the persisted profile and whether this submission
// created it (versus overwriting a previous one).
type BuildResult struct {
	Profile *models.ArchetypeProfile
	Created bool
}

// Builder derives and persists archetype profiles from quiz submissions.
// It holds no state beyond its injected store; one instance serves all
// requests.
type Builder struct {
	store ProfileStore
	now   func() time.Time
}

func NewBuilder(store ProfileStore) *Builder {
	return &Builder{store: store, now: time.Now}
}

// BuildOrUpdate normalizes the submitted answers, derives the archetype
// fields, and upserts the one profile document for the user. A prior
// profile is replaced, not merged: retaking the quiz supersedes the
// previous result, with CreatedAt preserved and UpdatedAt advanced.
func (b *Builder) BuildOrUpdate(ctx context.Context, req BuildRequest) (BuildResult, error) {
	if req.UserID == "" {
		return BuildResult{}, fmt.Errorf("%w: user id is required", ErrAuthorization)
	}
	if len(req.Answers) == 0 {
		return BuildResult{}, fmt.Errorf("%w: a quiz submission must contain at least one answer", ErrValidation)
	}

	answers, err := NormalizeAnswers(req.Answers)
	if err != nil {
		return BuildResult{}, err
	}

	profile := &models.ArchetypeProfile{
		UserID:  req.UserID,
		Answers: answers,
	}

	if err := b.deriveArchetypeFields(profile, req); err != nil {
		return BuildResult{}, err
	}

	now := b.now().UTC()
	existing, err := b.store.Get(ctx, req.UserID)
	switch {
	case errors.Is(err, ErrNotFound):
		profile.CreatedAt = now
		profile.UpdatedAt = now
		if err := b.store.Upsert(ctx, profile, nil); err != nil {
			return BuildResult{}, err
		}
		return BuildResult{Profile: profile, Created: true}, nil
	case err != nil:
		return BuildResult{}, err
	}

	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = now
	prev := existing.UpdatedAt
	if err := b.store.Upsert(ctx, profile, &prev); err != nil {
		return BuildResult{}, err
	}
	return BuildResult{Profile: profile, Created: false}, nil
}

// deriveArchetypeFields fills primary/secondary/confidence and records the
// quiz version. Scores always win over a client-supplied DetailedResult
// confidence: server math is the ground truth for anything downstream.
func (b *Builder) deriveArchetypeFields(profile *models.ArchetypeProfile, req BuildRequest) error {
	scores := req.Scores
	if len(scores) == 0 && req.DetailedResult != nil {
		scores = req.DetailedResult.Scores
	}

	switch {
	case len(scores) > 0:
		agg, err := AggregateScores(scores)
		if err != nil {
			return err
		}
		if agg.Insufficient {
			return fmt.Errorf("%w: all scores are zero, cannot determine an archetype", ErrValidation)
		}
		profile.PrimaryArchetype = agg.Primary
		profile.SecondaryArchetype = agg.Secondary
		profile.Confidence = agg.Confidence
		profile.QuizVersion = defaultVersion(req.QuizVersion, models.QuizVersionEnhanced)

		if req.DetailedResult != nil {
			dr, err := sanitizeDetailedResult(req.DetailedResult, scores)
			if err != nil {
				return err
			}
			profile.DetailedResult = dr
		}
		return nil

	case req.Archetype != "":
		// Legacy submission: the quiz client determined a single archetype.
		if !models.IsArchetype(req.Archetype) {
			return fmt.Errorf("%w: unknown archetype %q", ErrValidation, req.Archetype)
		}
		profile.PrimaryArchetype = req.Archetype
		profile.Confidence = LegacyConfidence
		profile.QuizVersion = defaultVersion(req.QuizVersion, models.QuizVersionLegacy)
		return nil

	default:
		return fmt.Errorf("%w: submission needs either scores or an archetype name", ErrValidation)
	}
}

// sanitizeDetailedResult keeps the client analysis as display data while
// rejecting shapes that would confuse later readers: unknown analysis
// categories and out-of-range confidence values.
func sanitizeDetailedResult(dr *models.DetailedResult, scores models.ScoreSet) (*models.DetailedResult, error) {
	for category := range dr.Analysis {
		switch category {
		case models.AnalysisStrengths, models.AnalysisChallenges, models.AnalysisRecommendations:
		default:
			return nil, fmt.Errorf("%w: unknown analysis category %q", ErrValidation, category)
		}
	}

	out := &models.DetailedResult{
		Scores:     scores,
		Confidence: dr.Confidence,
		Analysis:   dr.Analysis,
	}
	if out.Confidence < 0 {
		out.Confidence = 0
	}
	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return out, nil
}

func defaultVersion(version, fallback string) string {
	if version == "" {
		return fallback
	}
	return version
}
