package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

const WinLength = 5

// CheckWin looks only at lines through the last placed stone; no other
// stone can have completed a new line.
func CheckWin(board *entity.Board, row, col int, player entity.Stone) bool {
	for _, axis := range Axes {
		if LineLength(board, row, col, axis, player) >= WinLength {
			return true
		}
	}
	return false
}
