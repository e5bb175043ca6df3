package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type recordService interface {
	EnsurePlayer(ctx context.Context, name string) (entity.Record, error)
	RecordResult(ctx context.Context, winner, loser string) error
	Leaderboard() []entity.Record
}

type gameMetrics interface {
	ObserveMove(outcome, reason string)
	ObserveUndo()
	ObserveGameFinished(winner string)
	SessionStarted()
	SessionEnded()
}

// GameManager owns every running session. Moves and undos are serialized, so
// each runs to completion before the next one starts. Game results are
// persisted after the lock is released.
type GameManager struct {
	logger        *slog.Logger
	recordService recordService
	metrics       gameMetrics

	mu       sync.Mutex
	sessions map[string]*gomoku.Session
}

func NewGameManager(logger *slog.Logger, recordService recordService, metrics gameMetrics) *GameManager {
	return &GameManager{
		logger:        logger.With("component", "game_manager"),
		recordService: recordService,
		metrics:       metrics,
		sessions:      make(map[string]*gomoku.Session),
	}
}

// StartSession binds black and white names to a new game. Black moves first.
func (that *GameManager) StartSession(ctx context.Context, black, white string) (*gomoku.Snapshot, error) {
	log := that.logger.With("method", "StartSession")

	black, white = strings.TrimSpace(black), strings.TrimSpace(white)
	if black == "" || white == "" {
		return nil, apperror.ErrMissingPlayerName
	}

	for _, name := range []string{black, white} {
		if _, err := that.recordService.EnsurePlayer(ctx, name); err != nil {
			// the record is still cached, so the game can go on
			log.Error("could not persist player record", "player", name, "error", err)
		}
	}

	session := gomoku.NewSession(uuid.NewString(), black, white)

	that.mu.Lock()
	that.sessions[session.ID()] = session
	that.mu.Unlock()

	that.metrics.SessionStarted()
	log.Info("session started", "session", session.ID(), "black", black, "white", white)

	return session.Snapshot(), nil
}

// SelectCell plays the current turn at (row, col). A win records the result
// and ends the session.
func (that *GameManager) SelectCell(ctx context.Context, sessionID string, row, col int) (gomoku.Result, *gomoku.Snapshot, error) {
	log := that.logger.With("method", "SelectCell", "session", sessionID)

	that.mu.Lock()
	session, ok := that.sessions[sessionID]
	if !ok {
		that.mu.Unlock()
		return gomoku.Result{}, nil, apperror.ErrSessionNotFound
	}

	result, err := session.Play(row, col)
	if err == nil || result.Outcome != gomoku.OutcomeAccepted {
		that.metrics.ObserveMove(result.Outcome.String(), result.Reason.String())
	}

	if err != nil {
		snapshot := session.Snapshot()
		that.mu.Unlock()

		if errors.Is(err, apperror.ErrForbiddenMove) {
			log.Debug("forbidden move rejected", "row", row, "col", col, "reason", result.Reason.String())
		}
		return result, snapshot, fmt.Errorf("failed to play: %w", err)
	}

	if result.Outcome == gomoku.OutcomeWin {
		delete(that.sessions, sessionID)
	}
	snapshot := session.Snapshot()
	that.mu.Unlock()

	if result.Outcome == gomoku.OutcomeWin {
		that.finish(ctx, log, snapshot, result.Winner)
	}

	return result, snapshot, nil
}

// Undo takes back the last move of a running session.
func (that *GameManager) Undo(_ context.Context, sessionID string) (*gomoku.Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[sessionID]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	_, undone, err := session.Undo()
	if err != nil {
		return nil, fmt.Errorf("failed to undo: %w", err)
	}

	if undone {
		that.metrics.ObserveUndo()
	}

	return session.Snapshot(), nil
}

// Abandon drops a running session without touching player records.
func (that *GameManager) Abandon(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[sessionID]
	if !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, sessionID)
	that.metrics.SessionEnded()
	that.logger.Info("session abandoned", "session", sessionID, "moves", len(session.History()))

	return nil
}

func (that *GameManager) Session(sessionID string) (*gomoku.Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[sessionID]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return session.Snapshot(), nil
}

func (that *GameManager) Leaderboard() []entity.Record {
	return that.recordService.Leaderboard()
}

// finish persists the result of a session that is already unregistered.
func (that *GameManager) finish(ctx context.Context, log *slog.Logger, snapshot *gomoku.Snapshot, winner entity.Stone) {
	winnerName, loserName := snapshot.Black, snapshot.White
	if winner == entity.White {
		winnerName, loserName = loserName, winnerName
	}

	if err := that.recordService.RecordResult(ctx, winnerName, loserName); err != nil {
		log.Error("could not persist game result", "winner", winnerName, "loser", loserName, "error", err)
	}

	that.metrics.ObserveGameFinished(winner.String())
	that.metrics.SessionEnded()
	log.Info("game finished", "winner", winnerName, "loser", loserName, "moves", snapshot.MoveCount)
}
