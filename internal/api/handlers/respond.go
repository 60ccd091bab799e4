package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	body := map[string]any{"error": msg}
	if detail != "" {
		body["message"] = detail
	}
	writeJSON(w, status, body)
}

func parseBoolQueryParam(r *http.Request, name string, defaultVal bool) bool {
	str := r.URL.Query().Get(name)
	if str == "" {
		return defaultVal
	}

	val, err := strconv.ParseBool(str)
	if err != nil {
		return defaultVal
	}
	return val
}
