package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/minisudoku-go/internal/api/apierr"
	"github.com/mcoot/minisudoku-go/internal/api/response"
	"github.com/mcoot/minisudoku-go/internal/services/stats"
)

// StatsHandler handles leaderboard and player stats endpoints
type StatsHandler struct {
	statsService *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.statsService.Leaderboard(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LeaderboardFrom(entries))
}

// PlayerStats handles GET /api/v1/players/{username}/stats
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	summary, err := h.statsService.Summary(r.Context(), username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerStatsFrom(summary))
}

// PlayerHistory handles GET /api/v1/players/{username}/history?limit=n
func (h *StatsHandler) PlayerHistory(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.statsService.History(r.Context(), username, limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HistoryFrom(username, entries))
}
