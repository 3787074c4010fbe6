package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Captainbleu/Boggle/internal/api/apierr"
	"github.com/Captainbleu/Boggle/internal/api/request"
	"github.com/Captainbleu/Boggle/internal/api/response"
	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/services/game"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	gameController *game.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(gameController *game.Controller) *SessionHandler {
	return &SessionHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Language == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("language is required"))
		return
	}
	if req.Size < 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("size must be positive"))
		return
	}

	session, err := h.gameController.CreateSession(r.Context(), req.Language, req.Size)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w, response.SessionFromModel(session))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	session, err := h.gameController.GetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteSession(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// NewBoard handles POST /api/v1/sessions/{id}/board
func (h *SessionHandler) NewBoard(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	session, err := h.gameController.NewBoard(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// SubmitWord handles POST /api/v1/sessions/{id}/words
func (h *SessionHandler) SubmitWord(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.gameController.SubmitWord(r.Context(), id, req.Word)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitWordFromResult(result))
}
