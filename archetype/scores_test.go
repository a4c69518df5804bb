// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archetype

import (
	"errors"
	"math"
	"testing"

	"github.com/mirrorwell/archetype-api/models"
)

func TestAggregateScores(t *testing.T) {
	tests := []struct {
		name           string
		scores         models.ScoreSet
		wantPrimary    string
		wantSecondary  string
		wantConfidence float64
	}{
		{
			"typical quiz result",
			models.ScoreSet{"sage": 85, "innocent": 12, "explorer": 25, "hero": 18, "caregiver": 30},
			"sage", "caregiver", 0.5,
		},
		{
			"single archetype takes all",
			models.ScoreSet{"hero": 40},
			"hero", "", 1.0,
		},
		{
			"tie broken lexicographically",
			models.ScoreSet{"sage": 50, "hero": 50},
			"hero", "sage", 0.5,
		},
		{
			"secondary tie broken lexicographically",
			models.ScoreSet{"ruler": 60, "jester": 20, "lover": 20},
			"ruler", "jester", 0.6,
		},
		{
			"zero scored entries ignored for secondary",
			models.ScoreSet{"magician": 10, "rebel": 0},
			"magician", "", 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateScores(tt.scores)
			if err != nil {
				t.Fatalf("AggregateScores failed: %v", err)
			}
			if got.Insufficient {
				t.Fatal("unexpected insufficient result")
			}
			if got.Primary != tt.wantPrimary {
				t.Errorf("primary: expected %q, got %q", tt.wantPrimary, got.Primary)
			}
			if got.Secondary != tt.wantSecondary {
				t.Errorf("secondary: expected %q, got %q", tt.wantSecondary, got.Secondary)
			}
			if math.Abs(got.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("confidence: expected %v, got %v", tt.wantConfidence, got.Confidence)
			}
		})
	}
}

func TestAggregateScoresAllZero(t *testing.T) {
	got, err := AggregateScores(models.ScoreSet{"sage": 0, "hero": 0})
	if err != nil {
		t.Fatalf("AggregateScores failed: %v", err)
	}
	if !got.Insufficient {
		t.Error("all-zero scores should be reported as insufficient")
	}
	if got.Primary != "" || got.Secondary != "" || got.Confidence != 0 {
		t.Errorf("insufficient result should be empty, got %+v", got)
	}
}

func TestAggregateScoresValidation(t *testing.T) {
	tests := []struct {
		name   string
		scores models.ScoreSet
	}{
		{"unknown archetype", models.ScoreSet{"warrior": 10}},
		{"negative score", models.ScoreSet{"sage": -5, "hero": 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AggregateScores(tt.scores); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}
