package entity

type Move struct {
	Row    int   `json:"row"`
	Col    int   `json:"col"`
	Player Stone `json:"player"`
}

// MoveHistory is a linear stack of placements that have not been undone.
type MoveHistory struct {
	moves []Move
}

func (that *MoveHistory) Push(move Move) {
	that.moves = append(that.moves, move)
}

func (that *MoveHistory) Pop() (Move, bool) {
	if len(that.moves) == 0 {
		return Move{}, false
	}

	last := that.moves[len(that.moves)-1]
	that.moves = that.moves[:len(that.moves)-1]

	return last, true
}

func (that *MoveHistory) Last() (Move, bool) {
	if len(that.moves) == 0 {
		return Move{}, false
	}
	return that.moves[len(that.moves)-1], true
}

func (that *MoveHistory) Size() int {
	return len(that.moves)
}

func (that *MoveHistory) All() []Move {
	return append([]Move(nil), that.moves...)
}
