package handler

import (
	"net/http"

	"github.com/mcoot/minisudoku-go/internal/api/apierr"
	"github.com/mcoot/minisudoku-go/internal/api/request"
	"github.com/mcoot/minisudoku-go/internal/api/response"
	"github.com/mcoot/minisudoku-go/internal/services/game"
)

// SessionHandler handles login state and gameplay endpoints
type SessionHandler struct {
	gameController *game.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(gameController *game.Controller) *SessionHandler {
	return &SessionHandler{
		gameController: gameController,
	}
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.CredentialsRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	state, err := h.gameController.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromState(state))
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.Logout(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.SessionFromState(h.gameController.State()))
}

// Save handles POST /api/v1/session/save
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.Save(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.Text(w, http.StatusOK, "Progress saved!")
}

// SetCell handles PUT /api/v1/session/cells
func (h *SessionHandler) SetCell(w http.ResponseWriter, r *http.Request) {
	var req request.SetCellRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	state, err := h.gameController.SetCell(*req.Row, *req.Col, *req.Value)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromState(state))
}

// Check handles POST /api/v1/session/check
func (h *SessionHandler) Check(w http.ResponseWriter, r *http.Request) {
	result, state, err := h.gameController.Check(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CheckResultFrom(result, state))
}

// Reset handles POST /api/v1/session/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.Reset(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromState(state))
}
