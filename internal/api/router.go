package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/minisudoku-go/internal/api/apierr"
	"github.com/mcoot/minisudoku-go/internal/api/handler"
	"github.com/mcoot/minisudoku-go/internal/api/response"
	"github.com/mcoot/minisudoku-go/internal/services/game"
	"github.com/mcoot/minisudoku-go/internal/services/stats"
	common "github.com/mcoot/minisudoku-go/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	StatsService   *stats.Service
	// MetricsHandler serves /metrics; defaults to promhttp.Handler()
	MetricsHandler http.Handler
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.GameController)
	sessionHandler := handler.NewSessionHandler(cfg.GameController)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	// Recovery is innermost so a recovered panic is logged and counted as a 500
	api.Use(common.Logging(cfg.Logger))
	api.Use(common.Metrics)
	api.Use(common.Recovery(cfg.Logger, apiPanicHandler))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Accounts
	api.HandleFunc("/accounts", accountHandler.Register).Methods(http.MethodPost)

	// Session and gameplay
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", sessionHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/session/save", sessionHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/session/cells", sessionHandler.SetCell).Methods(http.MethodPut)
	api.HandleFunc("/session/check", sessionHandler.Check).Methods(http.MethodPost)
	api.HandleFunc("/session/reset", sessionHandler.Reset).Methods(http.MethodPost)

	// Stats
	api.HandleFunc("/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/stats", statsHandler.PlayerStats).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/history", statsHandler.PlayerHistory).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

// apiPanicHandler renders recovered panics as a JSON internal error
func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
