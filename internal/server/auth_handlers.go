package server

import (
	"context"
	"fmt"
	"net/http"
)

// Google Calendar auth API

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"connected": false,
		"message":   "Not configured",
	}

	if s.gcalClient == nil {
		status["message"] = "Google Calendar client not initialized. Check credentials.json."
		respondJSON(w, http.StatusOK, status)
		return
	}

	if s.gcalClient.IsAuthenticated() {
		status["connected"] = true
		status["message"] = "Connected"
	} else {
		status["message"] = "Not authenticated. Connect to authorize calendar access."
	}

	respondJSON(w, http.StatusOK, status)
}

// handleAuthConnect returns the authorization URL the user must visit.
func (s *Server) handleAuthConnect(w http.ResponseWriter, r *http.Request) {
	if s.gcalClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Google Calendar not configured. Check credentials.json.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"auth_url": s.gcalClient.GetAuthURL(),
	})
}

// handleAuthExchangeCode exchanges a pasted authorization code for a token.
func (s *Server) handleAuthExchangeCode(w http.ResponseWriter, r *http.Request) {
	if s.gcalClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Google Calendar not configured")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Code == "" {
		respondError(w, http.StatusBadRequest, "authorization code is required")
		return
	}

	if err := s.gcalClient.ExchangeCode(r.Context(), req.Code); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to exchange code: %v", err))
		return
	}

	fmt.Println("Google Calendar connected successfully!")
	respondJSON(w, http.StatusOK, map[string]string{"status": "connected"})
}

// handleOAuthCallback handles the OAuth redirect from Google.
func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "No authorization code received")
		return
	}

	if s.gcalClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Google Calendar not configured")
		return
	}

	if err := s.gcalClient.ExchangeCode(context.Background(), code); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to exchange code: %v", err))
		return
	}

	fmt.Println("Google Calendar connected successfully!")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<html><body>Authorization complete. You can close this tab.</body></html>")
}

func (s *Server) handleAuthDisconnect(w http.ResponseWriter, r *http.Request) {
	if s.gcalClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Google Calendar not configured")
		return
	}

	if err := s.gcalClient.Disconnect(); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to disconnect: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}

// Calendars API

func (s *Server) handleListCalendars(w http.ResponseWriter, r *http.Request) {
	if s.gcalClient == nil || !s.gcalClient.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "Google Calendar not authenticated. Please re-authenticate.")
		return
	}

	calendars, err := s.gcalClient.ListCalendars()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"calendars": calendars})
}
