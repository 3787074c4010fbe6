package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Captainbleu/Boggle/internal/api/handler"
	"github.com/Captainbleu/Boggle/internal/api/response"
	"github.com/Captainbleu/Boggle/internal/language"
	"github.com/Captainbleu/Boggle/internal/middleware"
	"github.com/Captainbleu/Boggle/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/board", sessionHandler.NewBoard).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/words", sessionHandler.SubmitWord).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// healthHandler reports liveness and the bundled languages
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{
		Status:    "ok",
		Languages: language.Codes(),
	})
}
