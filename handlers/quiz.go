// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/auth"
	"github.com/mirrorwell/archetype-api/cliparse"
	"github.com/mirrorwell/archetype-api/middleware"
	"github.com/mirrorwell/archetype-api/models"
)

type QuizHandler struct {
	builder *archetype.Builder
	store   archetype.ProfileStore
	cfg     cliparse.Config
}

func NewQuizHandler(builder *archetype.Builder, store archetype.ProfileStore, cfg cliparse.Config) *QuizHandler {
	return &QuizHandler{builder: builder, store: store, cfg: cfg}
}

// SubmitQuiz handles POST /quiz/submissions
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.ResolveUserToken(middleware.BearerToken(r), h.cfg.UserTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req models.SubmitQuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.builder.BuildOrUpdate(r.Context(), archetype.BuildRequest{
		UserID:         userID,
		Answers:        req.Answers,
		Archetype:      req.Archetype,
		Scores:         req.Scores,
		DetailedResult: req.DetailedResult,
		QuizVersion:    req.QuizVersion,
	})
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	slog.Info("quiz submitted",
		"user_id", userID,
		"archetype", result.Profile.PrimaryArchetype,
		"created", result.Created,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.UserTokenSalt),
	)

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	middleware.JSONResponse(w, status, models.SubmitQuizResponse{
		PrimaryArchetype: result.Profile.PrimaryArchetype,
		Confidence:       result.Profile.Confidence,
		QuizCompletedAt:  result.Profile.UpdatedAt,
		ProfileCreated:   result.Created,
	})
}

// GetProfile handles GET /profile
func (h *QuizHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.ResolveUserToken(middleware.BearerToken(r), h.cfg.UserTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	profile, err := h.store.Get(r.Context(), userID)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}
