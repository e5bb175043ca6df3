package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_WinRate(t *testing.T) {
	assert.InDelta(t, 0.0, Record{Name: "new"}.WinRate(), 1e-9)
	assert.InDelta(t, 0.75, Record{Wins: 3, Losses: 1}.WinRate(), 1e-9)
	assert.InDelta(t, 0.0, Record{Losses: 4}.WinRate(), 1e-9)
	assert.Equal(t, 4, Record{Wins: 3, Losses: 1}.Games())
}
