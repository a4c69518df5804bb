// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archetype

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mirrorwell/archetype-api/models"
)

// SessionStore is the conversation-session boundary. Put stores a session
// under its TTL; failures surface as ErrUnavailable.
type SessionStore interface {
	Put(ctx context.Context, sess models.Session) error
	Get(ctx context.Context, sessionID string) (models.Session, error)
}

// Greeter opens conversation sessions seeded from the caller's archetype
// profile.
type Greeter struct {
	profiles ProfileStore
	sessions SessionStore
	now      func() time.Time
}

func NewGreeter(profiles ProfileStore, sessions SessionStore) *Greeter {
	return &Greeter{profiles: profiles, sessions: sessions, now: time.Now}
}

// StartSession creates a new session for the user and composes its opening
// greeting. A user without a stored profile still gets a session: the
// greeting just carries no archetype flavor and the session records an
// empty archetype.
func (g *Greeter) StartSession(ctx context.Context, userID string) (models.Session, string, error) {
	if userID == "" {
		return models.Session{}, "", fmt.Errorf("%w: user id is required", ErrAuthorization)
	}

	sess := models.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		StartedAt: g.now().UTC(),
	}

	var greeting string
	profile, err := g.profiles.Get(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
		greeting = "Welcome. I'm your mirror. Take the archetype quiz and I'll reflect what I see in you."
	case err != nil:
		return models.Session{}, "", err
	default:
		sess.Archetype = profile.PrimaryArchetype
		sess.Confidence = profile.Confidence
		greeting = composeGreeting(profile)
	}

	if err := g.sessions.Put(ctx, sess); err != nil {
		return models.Session{}, "", err
	}
	return sess, greeting, nil
}

// Resume looks up an existing session by id.
func (g *Greeter) Resume(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, fmt.Errorf("%w: session id is required", ErrValidation)
	}
	return g.sessions.Get(ctx, sessionID)
}

func composeGreeting(profile *models.ArchetypeProfile) string {
	info, ok := models.ArchetypeByName(profile.PrimaryArchetype)
	if !ok {
		return "Welcome back. I'm your mirror."
	}

	greeting := fmt.Sprintf("Welcome back. I see the %s in you, someone who %s.",
		info.Name, info.Resonance)
	if sec, ok := models.ArchetypeByName(profile.SecondaryArchetype); ok {
		greeting += fmt.Sprintf(" There's a touch of the %s there too.", sec.Name)
	}
	return greeting
}
