// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archetype

import (
	"fmt"

	"github.com/mirrorwell/archetype-api/models"
)

// Aggregate is the outcome of scoring one submission. When Insufficient is
// true (all scores zero) Primary and Secondary are empty and Confidence is
// 0; callers must treat that as a distinct state rather than proceed with
// an arbitrary archetype.
type Aggregate struct {
	Primary      string
	Secondary    string
	Confidence   float64
	Insufficient bool
}

// AggregateScores determines the primary and secondary archetype and a
// normalized confidence value from a score set.
//
// Primary is the archetype with the strictly highest score; ties are broken
// by picking the lexicographically first tied name so results are
// reproducible. Secondary follows the same rule among the remaining
// archetypes. Confidence is primaryScore / total, clamped to [0, 1].
// Archetypes missing from the set count as zero.
func AggregateScores(scores models.ScoreSet) (Aggregate, error) {
	total := 0
	for name, score := range scores {
		if !models.IsArchetype(name) {
			return Aggregate{}, fmt.Errorf("%w: unknown archetype %q in scores", ErrValidation, name)
		}
		if score < 0 {
			return Aggregate{}, fmt.Errorf("%w: negative score for archetype %q", ErrValidation, name)
		}
		total += score
	}

	if total == 0 {
		return Aggregate{Insufficient: true}, nil
	}

	// Walk the closed enumeration in sorted order; taking only strict
	// improvements gives the lexicographic tie-break for free.
	var primary, secondary string
	primaryScore, secondaryScore := -1, -1
	for _, name := range models.Archetypes() {
		score := scores[name]
		switch {
		case score > primaryScore:
			secondary, secondaryScore = primary, primaryScore
			primary, primaryScore = name, score
		case score > secondaryScore:
			secondary, secondaryScore = name, score
		}
	}

	// A zero-score runner-up is no evidence at all; leave secondary unset
	// rather than promote an arbitrary archetype.
	if secondaryScore == 0 {
		secondary = ""
	}

	confidence := float64(primaryScore) / float64(total)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return Aggregate{
		Primary:    primary,
		Secondary:  secondary,
		Confidence: confidence,
	}, nil
}
