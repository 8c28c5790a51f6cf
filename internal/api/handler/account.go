package handler

import (
	"net/http"

	"github.com/mcoot/minisudoku-go/internal/api/apierr"
	"github.com/mcoot/minisudoku-go/internal/api/request"
	"github.com/mcoot/minisudoku-go/internal/api/response"
	"github.com/mcoot/minisudoku-go/internal/services/game"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	gameController *game.Controller
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(gameController *game.Controller) *AccountHandler {
	return &AccountHandler{
		gameController: gameController,
	}
}

// Register handles POST /api/v1/accounts
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.CredentialsRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.gameController.Register(r.Context(), req.Username, req.Password); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Text(w, http.StatusCreated, "Registration successful! You can now login.")
}
