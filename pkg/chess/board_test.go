package chess_test

import (
	"testing"

	"github.com/corvidchess/legalmove/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardStateRoundTrip(t *testing.T) {
	pieces := []chess.Piece{
		{ID: 1, Color: chess.White, Kind: chess.King, Square: chess.NewSquare(0, 4)},
		{ID: 2, Color: chess.Black, Kind: chess.King, Square: chess.NewSquare(7, 4)},
		{ID: 3, Color: chess.White, Kind: chess.Pawn, Square: chess.NewSquare(1, 0)},
	}
	board := chess.NewBoardState(pieces)

	for _, p := range pieces {
		color, ok := board.Get(p.Square)
		require.True(t, ok)
		assert.Equal(t, p.Color, color)
	}
	assert.True(t, board.IsEmpty(chess.NewSquare(4, 4)))
}

func TestNewBoardStatePanicsOnDuplicateSquare(t *testing.T) {
	pieces := []chess.Piece{
		{ID: 1, Color: chess.White, Kind: chess.Pawn, Square: chess.NewSquare(3, 3)},
		{ID: 2, Color: chess.Black, Kind: chess.Pawn, Square: chess.NewSquare(3, 3)},
	}
	assert.Panics(t, func() {
		chess.NewBoardState(pieces)
	})
}

func TestNewSquarePanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { chess.NewSquare(8, 0) })
	assert.Panics(t, func() { chess.NewSquare(0, -1) })
}
