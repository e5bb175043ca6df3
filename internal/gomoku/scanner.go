package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

type Direction struct {
	DRow, DCol int
}

func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// Axes are the four lines through a cell: horizontal, vertical and both diagonals.
var Axes = [4]Direction{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}

// Run counts consecutive cells owned by owner, stepping outward from the
// origin along dir. The origin itself is not inspected. A limit <= 0 means
// the scan only stops at a mismatch or the board edge.
func Run(board *entity.Board, row, col int, dir Direction, owner entity.Stone, limit int) int {
	count := 0
	r, c := row+dir.DRow, col+dir.DCol
	for entity.InBounds(r, c) && board.At(r, c) == owner {
		count++
		if limit > 0 && count >= limit {
			break
		}
		r += dir.DRow
		c += dir.DCol
	}
	return count
}

// LineLength is the full contiguous run through the origin along one axis,
// counting the origin as owned.
func LineLength(board *entity.Board, row, col int, dir Direction, owner entity.Stone) int {
	return 1 + Run(board, row, col, dir, owner, 0) + Run(board, row, col, dir.Reverse(), owner, 0)
}

// MatchesLength reports whether the capped run through the origin equals
// length exactly. Each side is scanned at most length-1 steps.
func MatchesLength(board *entity.Board, row, col int, dir Direction, owner entity.Stone, length int) bool {
	steps := length - 1
	if steps <= 0 {
		return length == 1
	}

	count := 1 + Run(board, row, col, dir, owner, steps) + Run(board, row, col, dir.Reverse(), owner, steps)

	return count == length
}
