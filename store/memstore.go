// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/models"
)

// MemStore is an in-memory ProfileStore. It implements the same
// conditional-write semantics as SQLStore and backs tests and ephemeral
// deployments.
type MemStore struct {
	mu       sync.RWMutex
	profiles map[string]models.ArchetypeProfile
}

func NewMemStore() *MemStore {
	return &MemStore{profiles: make(map[string]models.ArchetypeProfile)}
}

func (s *MemStore) Get(_ context.Context, userID string) (*models.ArchetypeProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no profile for user", archetype.ErrNotFound)
	}
	out := clone(profile)
	return &out, nil
}

func (s *MemStore) Upsert(_ context.Context, profile *models.ArchetypeProfile, prevUpdatedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prevUpdatedAt != nil {
		existing, ok := s.profiles[profile.UserID]
		if !ok || !existing.UpdatedAt.Equal(*prevUpdatedAt) {
			return fmt.Errorf("%w: profile changed since it was read", archetype.ErrConflict)
		}
	}
	s.profiles[profile.UserID] = clone(*profile)
	return nil
}

// clone copies the profile deeply enough that callers cannot mutate
// stored state through returned pointers and slices.
func clone(p models.ArchetypeProfile) models.ArchetypeProfile {
	out := p
	out.Answers = make([]models.QuizAnswer, len(p.Answers))
	copy(out.Answers, p.Answers)
	for i, a := range p.Answers {
		if a.Choice != nil {
			choice := *a.Choice
			out.Answers[i].Choice = &choice
		}
	}
	if p.DetailedResult != nil {
		dr := *p.DetailedResult
		dr.Scores = make(models.ScoreSet, len(p.DetailedResult.Scores))
		for k, v := range p.DetailedResult.Scores {
			dr.Scores[k] = v
		}
		dr.Analysis = make(map[string][]string, len(p.DetailedResult.Analysis))
		for k, v := range p.DetailedResult.Analysis {
			items := make([]string, len(v))
			copy(items, v)
			dr.Analysis[k] = items
		}
		out.DetailedResult = &dr
	}
	return out
}
