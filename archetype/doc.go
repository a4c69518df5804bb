// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package archetype implements the quiz-to-profile pipeline: answer
// normalization, score aggregation, profile building, and session
// greetings. It owns the domain error taxonomy and the store interfaces
// the persistence packages implement.
package archetype
