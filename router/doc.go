// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to routes.

# Routes

	GET  /health              liveness check
	POST /quiz/submissions    submit a completed quiz
	GET  /profile             fetch the caller's archetype profile
	POST /sessions            open a conversation session
	GET  /sessions/{id}       resume a session
	GET  /archetypes          list the archetype catalog
	GET  /archetypes/{name}   describe one archetype

Uses Go 1.22+ method-and-pattern routing on the standard ServeMux.
Every route except /health and the catalog requires an Authorization
bearer token.
*/
package router
