// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mirrorwell/archetype-api/models"
	"github.com/mirrorwell/archetype-api/router"
	"github.com/mirrorwell/archetype-api/session"
	"github.com/mirrorwell/archetype-api/store"
	"github.com/mirrorwell/archetype-api/testutil"
)

// TestQuizToSessionFlow walks the whole pipeline through the real router:
// submit a quiz, read the profile back, then open a session whose greeting
// reflects the quiz result.
func TestQuizToSessionFlow(t *testing.T) {
	profiles := store.NewMemStore()
	sessions := session.NewMemoryStore(time.Minute)
	mux := router.NewRouter(profiles, sessions, testutil.GetTestConfig())

	// Submit the quiz.
	req := testutil.MakeRequest("POST", "/quiz/submissions", models.SubmitQuizRequest{
		Answers: testutil.QuizAnswers(),
		Scores:  models.ScoreSet{"sage": 85, "innocent": 12, "explorer": 25, "hero": 18, "caregiver": 30},
	}, authHeader("user-1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var submitted models.SubmitQuizResponse
	testutil.AssertJSON(t, w, &submitted)
	if submitted.PrimaryArchetype != "sage" {
		t.Fatalf("expected sage, got %q", submitted.PrimaryArchetype)
	}

	// The profile is immediately readable.
	req = testutil.MakeRequest("GET", "/profile", nil, authHeader("user-1"))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var profile models.ArchetypeProfile
	testutil.AssertJSON(t, w, &profile)
	if profile.SecondaryArchetype != "caregiver" {
		t.Errorf("expected secondary caregiver, got %q", profile.SecondaryArchetype)
	}

	// A session greets with the fresh archetype.
	req = testutil.MakeRequest("POST", "/sessions", nil, authHeader("user-1"))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var greeting models.SessionGreetingResponse
	testutil.AssertJSON(t, w, &greeting)
	if greeting.CurrentArchetype != "sage" {
		t.Errorf("session should carry the profile archetype, got %q", greeting.CurrentArchetype)
	}

	// And the session is resumable by its owner.
	req = testutil.MakeRequest("GET", "/sessions/"+greeting.SessionID, nil, authHeader("user-1"))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

// TestQuizRetakeFlow verifies a retake replaces the profile end to end.
func TestQuizRetakeFlow(t *testing.T) {
	profiles := store.NewMemStore()
	sessions := session.NewMemoryStore(time.Minute)
	mux := router.NewRouter(profiles, sessions, testutil.GetTestConfig())

	submit := func(scores models.ScoreSet) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/quiz/submissions", models.SubmitQuizRequest{
			Answers: testutil.QuizAnswers(),
			Scores:  scores,
		}, authHeader("user-1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	testutil.AssertStatus(t, submit(models.ScoreSet{"hero": 40}), http.StatusCreated)
	testutil.AssertStatus(t, submit(models.ScoreSet{"explorer": 60}), http.StatusOK)

	req := testutil.MakeRequest("GET", "/profile", nil, authHeader("user-1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var profile models.ArchetypeProfile
	testutil.AssertJSON(t, w, &profile)
	if profile.PrimaryArchetype != "explorer" {
		t.Errorf("retake should replace the archetype, got %q", profile.PrimaryArchetype)
	}
}
