// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archetype

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mirrorwell/archetype-api/models"
)

// NormalizeAnswers converts raw submitted answers into their canonical
// tagged-union form, preserving submission order. It is a pure
// transformation: no fetching, no deduplication, no persistence.
//
// Each answer payload must be either a JSON string (free text) or a
// label/image object, and the declared type tag must agree with the actual
// shape. Duplicate question IDs within one batch are rejected rather than
// silently deduplicated.
func NormalizeAnswers(raw []models.RawQuizAnswer) ([]models.QuizAnswer, error) {
	normalized := make([]models.QuizAnswer, 0, len(raw))
	seen := make(map[int]bool, len(raw))

	for i, r := range raw {
		if r.QuestionID == 0 {
			return nil, fmt.Errorf("%w: answer %d is missing question_id", ErrValidation, i)
		}
		if seen[r.QuestionID] {
			return nil, fmt.Errorf("%w: duplicate question_id %d", ErrValidation, r.QuestionID)
		}
		seen[r.QuestionID] = true

		answeredAt := r.AnsweredAt
		if answeredAt.IsZero() {
			answeredAt = time.Now().UTC()
		}

		ans := models.QuizAnswer{
			QuestionID: r.QuestionID,
			Question:   r.Question,
			AnsweredAt: answeredAt,
		}

		shape, text, choice, err := decodeAnswerPayload(r.Answer)
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrValidation, r.QuestionID, err)
		}

		// The type tag must match the payload shape exactly. An untagged
		// answer does not get a guessed tag; the tag is part of the contract.
		if r.Type != shape {
			return nil, fmt.Errorf("%w: question %d: type tag %q does not match %s answer",
				ErrValidation, r.QuestionID, r.Type, shape)
		}

		ans.Type = shape
		ans.Text = text
		ans.Choice = choice
		normalized = append(normalized, ans)
	}

	return normalized, nil
}

// decodeAnswerPayload determines the concrete shape of an answer value.
// Returns the shape tag plus exactly one of text or choice.
func decodeAnswerPayload(payload json.RawMessage) (shape, text string, choice *models.ImageChoice, err error) {
	if len(payload) == 0 {
		return "", "", nil, fmt.Errorf("answer is missing")
	}

	var s string
	if json.Unmarshal(payload, &s) == nil {
		if s == "" {
			return "", "", nil, fmt.Errorf("text answer is empty")
		}
		return models.AnswerTypeText, s, nil, nil
	}

	var c models.ImageChoice
	if json.Unmarshal(payload, &c) == nil {
		if c.Label == "" || c.ImageURL == "" {
			return "", "", nil, fmt.Errorf("image answer requires both label and image_url")
		}
		return models.AnswerTypeImage, "", &c, nil
	}

	return "", "", nil, fmt.Errorf("answer is neither text nor a label/image pair")
}
