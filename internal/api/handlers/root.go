package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "metrobot",
		"description": "Turns chat messages into metro and spending tracker requests",
		"version":     Version,
		"endpoints": map[string]string{
			"GET /api":                "API information",
			"GET /health":             "Health check",
			"POST /command/parse":     "Classify a message: {\"text\": \"West Cortex\"}",
			"GET /command/parse":      "Classify ?text=... (&strict=true)",
			"GET /command/stations":   "Stations and accepted spellings",
			"GET /command/categories": "Spending categories",
			"GET /command/help":       "Help text shown by the bot",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found", "Check the root endpoint (/api) for available routes")
}
