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

type SessionHandler struct {
	greeter *archetype.Greeter
	cfg     cliparse.Config
}

func NewSessionHandler(greeter *archetype.Greeter, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{greeter: greeter, cfg: cfg}
}

// StartSession handles POST /sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.ResolveUserToken(middleware.BearerToken(r), h.cfg.UserTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	sess, greeting, err := h.greeter.StartSession(r.Context(), userID)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	slog.Info("session started",
		"user_id", userID,
		"session_id", sess.SessionID,
		"archetype", sess.Archetype,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SessionGreetingResponse{
		GreetingText:        greeting,
		SessionID:           sess.SessionID,
		CurrentArchetype:    sess.Archetype,
		ArchetypeConfidence: sess.Confidence,
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.ResolveUserToken(middleware.BearerToken(r), h.cfg.UserTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	sess, err := h.greeter.Resume(r.Context(), r.PathValue("id"))
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	// Sessions are private to their owner.
	if sess.UserID != userID {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sess)
}
