package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type Status int

const (
	StatusAwaitingMove Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game-over"
	}
	return "awaiting-move"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeRejectedOccupied
	OutcomeRejectedForbidden
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejectedOccupied:
		return "rejected-occupied"
	case OutcomeRejectedForbidden:
		return "rejected-forbidden"
	case OutcomeWin:
		return "win"
	default:
		return "accepted"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type Result struct {
	Outcome Outcome      `json:"outcome"`
	Move    entity.Move  `json:"move"`
	Reason  Reason       `json:"reason,omitempty"`
	Winner  entity.Stone `json:"winner,omitempty"`
}

// Session is one game between two named players. Black moves first and is
// the only side checked for forbidden moves.
type Session struct {
	id      string
	players map[entity.Stone]string
	board   entity.Board
	history entity.MoveHistory
	turn    entity.Stone
	status  Status
	winner  entity.Stone
}

func NewSession(id, blackName, whiteName string) *Session {
	return &Session{
		id: id,
		players: map[entity.Stone]string{
			entity.Black: blackName,
			entity.White: whiteName,
		},
		turn:   entity.Black,
		status: StatusAwaitingMove,
	}
}

// Play handles a selected cell. Rejections leave the session untouched.
func (that *Session) Play(row, col int) (Result, error) {
	move := entity.Move{Row: row, Col: col, Player: that.turn}

	if that.status == StatusGameOver {
		return Result{Move: move}, apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return Result{Move: move}, fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, row, col)
	}

	if that.board.At(row, col) != entity.Empty {
		return Result{Outcome: OutcomeRejectedOccupied, Move: move},
			fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row, col)
	}

	if that.turn == entity.Black {
		if reason := CheckForbidden(&that.board, row, col, that.turn); reason != ReasonNone {
			return Result{Outcome: OutcomeRejectedForbidden, Move: move, Reason: reason},
				fmt.Errorf("%w: %s", apperror.ErrForbiddenMove, reason)
		}
	}

	if err := that.board.Place(row, col, that.turn); err != nil {
		return Result{Outcome: OutcomeRejectedOccupied, Move: move}, err
	}
	that.history.Push(move)

	if CheckWin(&that.board, row, col, that.turn) {
		that.status = StatusGameOver
		that.winner = that.turn

		return Result{Outcome: OutcomeWin, Move: move, Winner: that.winner}, nil
	}

	that.turn = that.turn.Opponent()

	return Result{Outcome: OutcomeAccepted, Move: move}, nil
}

// Undo takes back the last move and hands the turn to its player.
// It reports false when there is nothing to undo.
func (that *Session) Undo() (entity.Move, bool, error) {
	if that.status == StatusGameOver {
		return entity.Move{}, false, apperror.ErrGameFinished
	}

	last, ok := that.history.Pop()
	if !ok {
		return entity.Move{}, false, nil
	}

	that.board.Clear(last.Row, last.Col)
	that.turn = last.Player

	return last, true, nil
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Turn() entity.Stone {
	return that.turn
}

func (that *Session) Status() Status {
	return that.status
}

func (that *Session) Winner() entity.Stone {
	return that.winner
}

func (that *Session) Board() entity.Board {
	return that.board
}

func (that *Session) History() []entity.Move {
	return that.history.All()
}

func (that *Session) PlayerName(stone entity.Stone) string {
	return that.players[stone]
}

// Snapshot is a read-only copy of the session for callers outside the engine.
type Snapshot struct {
	ID        string        `json:"id"`
	Black     string        `json:"black"`
	White     string        `json:"white"`
	Turn      entity.Stone  `json:"turn"`
	Status    Status        `json:"status"`
	Winner    entity.Stone  `json:"winner,omitempty"`
	Board     entity.Board  `json:"board"`
	History   []entity.Move `json:"history"`
	MoveCount int           `json:"move_count"`
	LastMove  *entity.Move  `json:"last_move,omitempty"`
}

func (that *Session) Snapshot() *Snapshot {
	history := that.history.All()

	var lastMove *entity.Move
	if last, ok := that.history.Last(); ok {
		lastMove = &last
	}

	return &Snapshot{
		ID:        that.id,
		Black:     that.players[entity.Black],
		White:     that.players[entity.White],
		Turn:      that.turn,
		Status:    that.status,
		Winner:    that.winner,
		Board:     that.board,
		History:   history,
		MoveCount: len(history),
		LastMove:  lastMove,
	}
}
