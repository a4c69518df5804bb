// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/handlers"
	"github.com/mirrorwell/archetype-api/models"
	"github.com/mirrorwell/archetype-api/store"
	"github.com/mirrorwell/archetype-api/testutil"
)

func quizFixture() (*handlers.QuizHandler, *store.MemStore) {
	profiles := store.NewMemStore()
	builder := archetype.NewBuilder(profiles)
	return handlers.NewQuizHandler(builder, profiles, testutil.GetTestConfig()), profiles
}

func authHeader(userID string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + testutil.TestToken(userID)}
}

func TestSubmitQuizCreatesProfile(t *testing.T) {
	h, _ := quizFixture()

	req := testutil.MakeRequest("POST", "/quiz/submissions", models.SubmitQuizRequest{
		Answers: testutil.QuizAnswers(),
		Scores:  models.ScoreSet{"sage": 85, "innocent": 12, "explorer": 25, "hero": 18, "caregiver": 30},
	}, authHeader("user-1"))
	w := httptest.NewRecorder()
	h.SubmitQuiz(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitQuizResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PrimaryArchetype != "sage" {
		t.Errorf("expected sage, got %q", resp.PrimaryArchetype)
	}
	if resp.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %v", resp.Confidence)
	}
	if !resp.ProfileCreated {
		t.Error("first submission should report profile_created")
	}
	if resp.QuizCompletedAt.IsZero() {
		t.Error("quiz_completed_at should be set")
	}
}

func TestSubmitQuizRetakeReturns200(t *testing.T) {
	h, _ := quizFixture()

	for i, wantStatus := range []int{http.StatusCreated, http.StatusOK} {
		req := testutil.MakeRequest("POST", "/quiz/submissions", models.SubmitQuizRequest{
			Answers: testutil.QuizAnswers(),
			Scores:  models.ScoreSet{"hero": 40},
		}, authHeader("user-1"))
		w := httptest.NewRecorder()
		h.SubmitQuiz(w, req)

		if w.Code != wantStatus {
			t.Errorf("submission %d: expected %d, got %d", i, wantStatus, w.Code)
		}
	}
}

func TestSubmitQuizLegacyFormat(t *testing.T) {
	h, _ := quizFixture()

	req := testutil.MakeRequest("POST", "/quiz/submissions", models.SubmitQuizRequest{
		Answers:   testutil.QuizAnswers(),
		Archetype: "magician",
	}, authHeader("user-1"))
	w := httptest.NewRecorder()
	h.SubmitQuiz(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitQuizResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PrimaryArchetype != "magician" {
		t.Errorf("expected magician, got %q", resp.PrimaryArchetype)
	}
	if resp.Confidence != archetype.LegacyConfidence {
		t.Errorf("expected legacy confidence, got %v", resp.Confidence)
	}
}

func TestSubmitQuizRejectsBadInput(t *testing.T) {
	h, _ := quizFixture()

	tests := []struct {
		name string
		body models.SubmitQuizRequest
	}{
		{"no answers", models.SubmitQuizRequest{Scores: models.ScoreSet{"sage": 10}}},
		{"no scores or archetype", models.SubmitQuizRequest{Answers: testutil.QuizAnswers()}},
		{"unknown archetype", models.SubmitQuizRequest{Answers: testutil.QuizAnswers(), Archetype: "warrior"}},
		{"all zero scores", models.SubmitQuizRequest{Answers: testutil.QuizAnswers(), Scores: models.ScoreSet{"sage": 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/quiz/submissions", tt.body, authHeader("user-1"))
			w := httptest.NewRecorder()
			h.SubmitQuiz(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestSubmitQuizRequiresToken(t *testing.T) {
	h, _ := quizFixture()

	req := testutil.MakeRequest("POST", "/quiz/submissions", models.SubmitQuizRequest{
		Answers: testutil.QuizAnswers(),
		Scores:  models.ScoreSet{"sage": 10},
	}, map[string]string{"Authorization": "Bearer user-1.forged"})
	w := httptest.NewRecorder()
	h.SubmitQuiz(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestGetProfile(t *testing.T) {
	h, profiles := quizFixture()
	seeded := testutil.SeedProfile(t, profiles, "user-1")

	req := testutil.MakeRequest("GET", "/profile", nil, authHeader("user-1"))
	w := httptest.NewRecorder()
	h.GetProfile(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.ArchetypeProfile
	testutil.AssertJSON(t, w, &got)
	if got.UserID != "user-1" || got.PrimaryArchetype != seeded.PrimaryArchetype {
		t.Errorf("profile mismatch: %+v", got)
	}
}

func TestGetProfileMissing(t *testing.T) {
	h, _ := quizFixture()

	req := testutil.MakeRequest("GET", "/profile", nil, authHeader("user-without-profile"))
	w := httptest.NewRecorder()
	h.GetProfile(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetProfileRequiresToken(t *testing.T) {
	h, _ := quizFixture()

	req := testutil.MakeRequest("GET", "/profile", nil, nil)
	w := httptest.NewRecorder()
	h.GetProfile(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
