package api

import (
	"log/slog"
	"net/http"

	"github.com/randytsao24/metrobot/internal/api/handlers"
	"github.com/randytsao24/metrobot/internal/config"
)

// maxRequestBytes caps request bodies; chat messages are short.
const maxRequestBytes = 4 << 10

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(cfg *config.Config, classifier handlers.Classifier, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	rootHandler := handlers.NewRootHandler()
	commandHandler := handlers.NewCommandHandler(classifier, cfg.StrictParse, logger)

	// Core routes
	mux.HandleFunc("GET /{$}", rootHandler.Index)
	mux.HandleFunc("GET /api", rootHandler.Index)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Command routes
	mux.HandleFunc("POST /command/parse", commandHandler.Parse)
	mux.HandleFunc("GET /command/parse", commandHandler.ParseQuery)
	mux.HandleFunc("GET /command/stations", commandHandler.Stations)
	mux.HandleFunc("GET /command/categories", commandHandler.Categories)
	mux.HandleFunc("GET /command/help", commandHandler.Help)

	mux.HandleFunc("/", rootHandler.NotFound)

	// Apply middleware stack
	return Chain(mux,
		Recovery(logger),
		Logging(logger),
		CORS,
		MaxBody(maxRequestBytes),
		Timeout(timeout),
	)
}
