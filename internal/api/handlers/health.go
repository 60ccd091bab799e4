// Package handlers contains HTTP request handlers
package handlers

import (
	"net/http"
	"time"
)

// Version is reported by the health and root endpoints.
const Version = "1.0.0"

type HealthHandler struct {
	startTime time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startTime: time.Now()}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
		"uptime":    time.Since(h.startTime).Round(time.Second).String(),
	})
}
