package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type Handlers interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	SelectCell(w http.ResponseWriter, r *http.Request)
	Undo(w http.ResponseWriter, r *http.Request)
	AbandonSession(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	StartSession(ctx context.Context, black, white string) (*gomoku.Snapshot, error)
	SelectCell(ctx context.Context, sessionID string, row, col int) (gomoku.Result, *gomoku.Snapshot, error)
	Undo(ctx context.Context, sessionID string) (*gomoku.Snapshot, error)
	Abandon(ctx context.Context, sessionID string) error
	Session(sessionID string) (*gomoku.Snapshot, error)
	Leaderboard() []entity.Record
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func NewHandlers(logger *slog.Logger, gameManager gameManager) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

type startSessionRequest struct {
	Black string `json:"black"`
	White string `json:"white"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type moveResponse struct {
	Outcome gomoku.Outcome   `json:"outcome"`
	Reason  gomoku.Reason    `json:"reason,omitempty"`
	Winner  string           `json:"winner,omitempty"`
	Move    entity.Move      `json:"move"`
	Session *gomoku.Snapshot `json:"session"`
}

type playerResponse struct {
	Name    string  `json:"name"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	snapshot, err := that.gameManager.StartSession(r.Context(), req.Black, req.White)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

func (that *handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.gameManager.Session(chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// SelectCell answers rejected moves with the outcome as well as the error,
// so the client can tell an occupied cell from a forbidden one.
func (that *handlers) SelectCell(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col are required"})
		return
	}

	result, snapshot, err := that.gameManager.SelectCell(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil && snapshot == nil {
		that.writeError(w, err)
		return
	}

	resp := moveResponse{
		Outcome: result.Outcome,
		Reason:  result.Reason,
		Move:    result.Move,
		Session: snapshot,
	}
	if result.Outcome == gomoku.OutcomeWin {
		resp.Winner = result.Winner.String()
	}

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, apperror.ErrCellOccupied):
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, apperror.ErrForbiddenMove):
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	default:
		that.writeError(w, err)
	}
}

func (that *handlers) Undo(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.gameManager.Undo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *handlers) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := that.gameManager.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) Leaderboard(w http.ResponseWriter, _ *http.Request) {
	records := that.gameManager.Leaderboard()

	players := make([]playerResponse, 0, len(records))
	for _, record := range records {
		players = append(players, playerResponse{
			Name:    record.Name,
			Wins:    record.Wins,
			Losses:  record.Losses,
			Games:   record.Games(),
			WinRate: record.WinRate(),
		})
	}

	writeJSON(w, http.StatusOK, players)
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrMissingPlayerName), errors.Is(err, apperror.ErrInvalidCell):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrCellOccupied):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrForbiddenMove):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
