// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/mirrorwell/archetype-api/middleware"
	"github.com/mirrorwell/archetype-api/models"
)

type ArchetypeHandler struct{}

func NewArchetypeHandler() *ArchetypeHandler {
	return &ArchetypeHandler{}
}

// ListArchetypes handles GET /archetypes
// Public: quiz clients need the catalog before any token exists.
func (h *ArchetypeHandler) ListArchetypes(w http.ResponseWriter, r *http.Request) {
	catalog := models.ArchetypeCatalog()
	middleware.JSONResponse(w, http.StatusOK, models.ArchetypeListResponse{
		Archetypes: catalog,
		TotalCount: len(catalog),
	})
}

// GetArchetype handles GET /archetypes/{name}
func (h *ArchetypeHandler) GetArchetype(w http.ResponseWriter, r *http.Request) {
	info, ok := models.ArchetypeByName(r.PathValue("name"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown archetype")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, info)
}
