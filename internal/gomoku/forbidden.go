package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

type Reason int

const (
	ReasonNone Reason = iota
	ReasonDoubleThree
	ReasonDoubleFour
	ReasonOverline
)

const (
	threeLength    = 3
	fourLength     = 4
	overlineLength = 6
)

func (r Reason) String() string {
	switch r {
	case ReasonDoubleThree:
		return "double-three"
	case ReasonDoubleFour:
		return "double-four"
	case ReasonOverline:
		return "overline"
	default:
		return "none"
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// CountPatterns returns how many axes through the candidate cell hold a
// capped run of exactly length stones, treating the cell as owned by player.
// Each side is scanned at most length-1 steps, so a longer run matches when
// the cap cuts it to length: three stones on one side count as a three, and
// the end cell of a run of seven or more counts as an overline. A run of
// seven split with fewer than five stones on each side matches no length.
func CountPatterns(board *entity.Board, row, col int, player entity.Stone, length int) int {
	patterns := 0
	for _, axis := range Axes {
		if MatchesLength(board, row, col, axis, player, length) {
			patterns++
		}
	}
	return patterns
}

// CheckForbidden evaluates a candidate move before it is placed. The board is
// not modified. Overline is reported first, then double-four, then double-three.
func CheckForbidden(board *entity.Board, row, col int, player entity.Stone) Reason {
	switch {
	case CountPatterns(board, row, col, player, overlineLength) > 0:
		return ReasonOverline
	case CountPatterns(board, row, col, player, fourLength) >= 2:
		return ReasonDoubleFour
	case CountPatterns(board, row, col, player, threeLength) >= 2:
		return ReasonDoubleThree
	default:
		return ReasonNone
	}
}
