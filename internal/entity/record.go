package entity

type Record struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// WinRate is wins over games played. A player with no games has rate 0.
func (that Record) WinRate() float64 {
	total := that.Wins + that.Losses
	if total == 0 {
		return 0
	}
	return float64(that.Wins) / float64(total)
}

func (that Record) Games() int {
	return that.Wins + that.Losses
}
