// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/mirrorwell/archetype-api/archetype"
	"github.com/mirrorwell/archetype-api/cliparse"
	"github.com/mirrorwell/archetype-api/handlers"
	"github.com/mirrorwell/archetype-api/middleware"
)

func NewRouter(profiles archetype.ProfileStore, sessions archetype.SessionStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	builder := archetype.NewBuilder(profiles)
	greeter := archetype.NewGreeter(profiles, sessions)
	quizHandler := handlers.NewQuizHandler(builder, profiles, cfg)
	sessionHandler := handlers.NewSessionHandler(greeter, cfg)
	archetypeHandler := handlers.NewArchetypeHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Quiz pipeline (token required)
	mux.HandleFunc("POST /quiz/submissions", middleware.WithLogging(quizHandler.SubmitQuiz))
	mux.HandleFunc("GET /profile", middleware.WithLogging(quizHandler.GetProfile))

	// Conversation sessions (token required)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.StartSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))

	// Archetype catalog (public)
	mux.HandleFunc("GET /archetypes", middleware.WithLogging(archetypeHandler.ListArchetypes))
	mux.HandleFunc("GET /archetypes/{name}", middleware.WithLogging(archetypeHandler.GetArchetype))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("archetype API v1"))
	})

	return mux
}
