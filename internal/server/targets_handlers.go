package server

import (
	"net/http"

	"github.com/aadithv/scout/internal/research"
)

// Research targets API

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"targets": s.session.List(),
	})
}

// handleAddManualTarget creates an empty editable target, applying any fields
// the request body carries.
func (s *Server) handleAddManualTarget(w http.ResponseWriter, r *http.Request) {
	target := s.session.AddManual()

	if r.Body != nil && r.ContentLength != 0 {
		var fields research.Target
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		fields.Reasoning = target.Reasoning
		if updated, ok := s.session.Update(target.Key, fields); ok {
			target = updated
		}
	}

	respondJSON(w, http.StatusCreated, target)
}

func (s *Server) handleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var fields research.Target
	if err := decodeJSON(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, ok := s.session.Update(key, fields)
	if !ok {
		respondError(w, http.StatusNotFound, "target not found")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if !s.session.Delete(key) {
		respondError(w, http.StatusNotFound, "target not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleReviewTargets returns only the targets a research run would process.
func (s *Server) handleReviewTargets(w http.ResponseWriter, r *http.Request) {
	included := s.session.Included()
	if included == nil {
		included = []research.Target{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"targets": included,
	})
}
