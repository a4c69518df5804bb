package models

import (
	"encoding/json"
	"time"
)

// Quiz version tags
const (
	QuizVersionLegacy   = "1.0"
	QuizVersionEnhanced = "2.0"
)

// Answer type tags
const (
	AnswerTypeText  = "text"
	AnswerTypeImage = "image"
)

// Analysis categories allowed in a DetailedResult
const (
	AnalysisStrengths       = "strengths"
	AnalysisChallenges      = "challenges"
	AnalysisRecommendations = "recommendations"
)

// Request types

// RawQuizAnswer is one answer as submitted by a client. Answer is either a
// JSON string (free text) or an ImageChoice object (labeled image selection);
// Type declares which shape the client intended.
type RawQuizAnswer struct {
	QuestionID int             `json:"question_id"`
	Question   string          `json:"question,omitempty"`
	Answer     json.RawMessage `json:"answer"`
	Type       string          `json:"type"`
	AnsweredAt time.Time       `json:"answered_at,omitzero"`
}

type SubmitQuizRequest struct {
	Answers []RawQuizAnswer `json:"answers"`

	// Legacy format (quiz_version 1.0): a single archetype name.
	Archetype string `json:"archetype,omitempty"`

	// Enhanced format (quiz_version 2.0): per-archetype scores with
	// optional client-side analysis.
	Scores         ScoreSet        `json:"scores,omitempty"`
	DetailedResult *DetailedResult `json:"detailed_result,omitempty"`

	QuizVersion string `json:"quiz_version,omitempty"`
}

// Response types

type SubmitQuizResponse struct {
	PrimaryArchetype string    `json:"primary_archetype"`
	Confidence       float64   `json:"confidence"`
	QuizCompletedAt  time.Time `json:"quiz_completed_at"`
	ProfileCreated   bool      `json:"profile_created"`
}

type SessionGreetingResponse struct {
	GreetingText        string  `json:"greeting_text"`
	SessionID           string  `json:"session_id"`
	CurrentArchetype    string  `json:"current_archetype,omitempty"`
	ArchetypeConfidence float64 `json:"archetype_confidence"`
}

type ArchetypeListResponse struct {
	Archetypes []ArchetypeInfo `json:"archetypes"`
	TotalCount int             `json:"total_count"`
}

// Domain types

// ImageChoice is a labeled image selection. The image locator is opaque to
// this service; it is never fetched or validated for reachability.
type ImageChoice struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}

// QuizAnswer is the normalized form of an answer. Exactly one of Text or
// Choice is set, and it always agrees with Type.
type QuizAnswer struct {
	QuestionID int          `json:"question_id"`
	Question   string       `json:"question,omitempty"`
	Type       string       `json:"type"`
	Text       string       `json:"text,omitempty"`
	Choice     *ImageChoice `json:"choice,omitempty"`
	AnsweredAt time.Time    `json:"answered_at"`
}

// ScoreSet maps archetype name to a non-negative score. Missing archetypes
// are treated as zero; scores are only comparable within one submission.
type ScoreSet map[string]int

// DetailedResult is the derived summary of a ScoreSet. When it arrives from
// a client it is an untrusted display hint; the server recomputes primary,
// secondary, and confidence from Scores for anything that matters.
type DetailedResult struct {
	Scores     ScoreSet            `json:"scores"`
	Confidence float64             `json:"confidence"`
	Analysis   map[string][]string `json:"analysis,omitempty"`
}

// ArchetypeProfile is the persisted entity, one document per user keyed by
// UserID. Writes are upserts; retaking the quiz replaces archetype fields
// and answers while CreatedAt is preserved.
type ArchetypeProfile struct {
	UserID             string          `json:"user_id"`
	PrimaryArchetype   string          `json:"primary_archetype"`
	SecondaryArchetype string          `json:"secondary_archetype,omitempty"`
	Confidence         float64         `json:"confidence"`
	DetailedResult     *DetailedResult `json:"detailed_result,omitempty"`
	Answers            []QuizAnswer    `json:"answers"`
	QuizVersion        string          `json:"quiz_version"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Session is the ephemeral pairing of a greeting and a conversation anchor.
// Archetype and Confidence snapshot the profile at greeting time; they do
// not track later profile evolution.
type Session struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	Archetype  string    `json:"archetype,omitempty"`
	Confidence float64   `json:"confidence"`
	StartedAt  time.Time `json:"started_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
