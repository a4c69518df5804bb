// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitQuizRequest: answers plus either a legacy archetype name or an
    enhanced ScoreSet with optional DetailedResult
  - RawQuizAnswer: one submitted answer with a tagged union payload

# Response Types

Types for JSON responses:

  - SubmitQuizResponse: primary_archetype, confidence, quiz_completed_at,
    profile_created
  - SessionGreetingResponse: greeting_text, session_id, current_archetype,
    archetype_confidence
  - ArchetypeListResponse: the closed archetype enumeration

# Domain Types

ArchetypeProfile is the persisted document (one per user). QuizAnswer is the
normalized tagged-union answer form. Session is the ephemeral greeting
anchor.

# Archetype Catalog

The archetype enumeration is closed: twelve lowercase names (innocent,
everyman, hero, caregiver, explorer, rebel, lover, creator, jester, sage,
magician, ruler). Use IsArchetype to validate inbound names and Archetypes
for deterministic iteration.
*/
package models
