package gomoku

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

type cell struct {
	row, col int
}

func boardWith(t *testing.T, stone entity.Stone, cells ...cell) *entity.Board {
	t.Helper()

	board := &entity.Board{}
	place(t, board, stone, cells...)

	return board
}

func place(t *testing.T, board *entity.Board, stone entity.Stone, cells ...cell) {
	t.Helper()

	for _, c := range cells {
		require.NoError(t, board.Place(c.row, c.col, stone))
	}
}

func row(r, from, to int) []cell {
	cells := make([]cell, 0, to-from+1)
	for c := from; c <= to; c++ {
		cells = append(cells, cell{r, c})
	}
	return cells
}

func column(c, from, to int) []cell {
	cells := make([]cell, 0, to-from+1)
	for r := from; r <= to; r++ {
		cells = append(cells, cell{r, c})
	}
	return cells
}

// playAll feeds moves into the session and fails on the first rejection.
func playAll(t *testing.T, session *Session, cells ...cell) {
	t.Helper()

	for _, c := range cells {
		_, err := session.Play(c.row, c.col)
		require.NoError(t, err, "move (%d,%d)", c.row, c.col)
	}
}

// sparse returns n cells with no two stones touching on any axis.
func sparse(n int) []cell {
	cells := make([]cell, 0, n)
	for i := range n {
		cells = append(cells, cell{2 * (i / 9), 2 * (i % 9)})
	}
	return cells
}
