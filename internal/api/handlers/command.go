package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/randytsao24/metrobot/internal/command"
	"github.com/randytsao24/metrobot/internal/models"
)

// maxMessageBytes bounds a single chat message accepted for classification.
const maxMessageBytes = 4096

type CommandHandler struct {
	classifier Classifier
	strict     bool
	logger     *slog.Logger
}

// NewCommandHandler creates a handler. strict sets the default trailing-input
// policy; a request may override it.
func NewCommandHandler(c Classifier, strict bool, logger *slog.Logger) *CommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandHandler{
		classifier: c,
		strict:     strict,
		logger:     logger,
	}
}

// Parse classifies the JSON body {"text": "...", "strict": bool}
func (h *CommandHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req models.ParseRequest
	body := http.MaxBytesReader(w, r.Body, maxMessageBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Message too long", "")
			return
		}
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Request body is required", "")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	strict := h.strict
	if req.Strict != nil {
		strict = *req.Strict
	}
	h.respond(w, req.Text, strict)
}

// ParseQuery classifies ?text=...
func (h *CommandHandler) ParseQuery(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if len(text) > maxMessageBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Message too long", "")
		return
	}
	h.respond(w, text, parseBoolQueryParam(r, "strict", h.strict))
}

func (h *CommandHandler) respond(w http.ResponseWriter, text string, strict bool) {
	// Trimming is the caller's job; the grammar matches from offset 0.
	text = strings.TrimSpace(text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "Text is required", "")
		return
	}

	var req command.Request
	if strict {
		req = h.classifier.ClassifyStrict(text)
	} else {
		req = h.classifier.Classify(text)
	}
	h.logger.Debug("classified message", "kind", req.Kind().String(), "strict", strict)

	writeJSON(w, http.StatusOK, models.NewParseResult(text, req))
}

// Stations lists every station in line order
func (h *CommandHandler) Stations(w http.ResponseWriter, r *http.Request) {
	lex := models.NewLexicon()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"directions": lex.Directions,
		"stations":   lex.Stations,
		"count":      len(lex.Stations),
	})
}

// Categories lists the spending categories
func (h *CommandHandler) Categories(w http.ResponseWriter, r *http.Request) {
	lex := models.NewLexicon()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": lex.Categories,
		"default":    command.Other.String(),
	})
}

// Help returns the help texts the bot replies with
func (h *CommandHandler) Help(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"schedule": command.ScheduleHelp(),
		"spending": command.SpendingHelp(),
	})
}
