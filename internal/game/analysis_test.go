package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestRunAndPieces(t *testing.T) {
	g, _ := newBoard(t, 5)
	cfg := Config{BoardSize: 5, PlayerCount: 2, ConnectCount: 4}
	assert.Equal(t, 0, LongestRun(g, 0, cfg))

	// player 0: diagonal of three plus a stray; player 1: pair in a row
	place(g, 1, 1, 0)
	place(g, 2, 2, 2)
	place(g, 3, 3, 4)
	place(g, 0, 4, 6)
	place(g, 4, 0, 1)
	place(g, 4, 1, 3)

	assert.Equal(t, 3, LongestRun(g, 0, cfg))
	assert.Equal(t, 2, LongestRun(g, 1, cfg))
	assert.Equal(t, 4, Pieces(g, 0, cfg))
	assert.Equal(t, 2, Pieces(g, 3, cfg))
}

func TestLongestRunAntiDiagonal(t *testing.T) {
	g, _ := newBoard(t, 4)
	cfg := Config{BoardSize: 4, PlayerCount: 3, ConnectCount: 4}
	for i := 0; i < 4; i++ {
		place(g, i, 3-i, 3*i+2)
	}
	assert.Equal(t, 4, LongestRun(g, 2, cfg))
}

func TestOpenColumns(t *testing.T) {
	g, cols := newBoard(t, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, OpenColumns(cols))
	for i := 0; i < 4; i++ {
		require.True(t, ApplyMove(g, cols, 2, i))
	}
	assert.Equal(t, []int{0, 1, 3}, OpenColumns(cols))
}
