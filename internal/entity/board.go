package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// BoardSize is fixed for every game.
const BoardSize = 19

type Stone int

const (
	Empty Stone = iota
	Black
	White
)

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other player's stone. Empty has no opponent.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (s Stone) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Board is a row-major grid. Coordinates passed to At, Place and Clear
// must satisfy InBounds.
type Board [BoardSize][BoardSize]Stone

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) At(row, col int) Stone {
	return that[row][col]
}

func (that *Board) Place(row, col int, stone Stone) error {
	if that[row][col] != Empty {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = stone

	return nil
}

// Clear empties a cell. Only undo calls it, on the last placed stone.
func (that *Board) Clear(row, col int) {
	that[row][col] = Empty
}
