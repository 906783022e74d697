package game_test

import (
	"context"
	"testing"

	"github.com/corvidchess/legalmove/pkg/chess"
	"github.com/corvidchess/legalmove/pkg/game"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(rank, file int) chess.Square { return chess.NewSquare(rank, file) }

func pieceAt(t *testing.T, g *game.Game, at chess.Square) chess.PieceID {
	t.Helper()
	for _, p := range g.Pieces() {
		if p.Square == at {
			return p.ID
		}
	}
	require.Failf(t, "no piece found", "no piece at %v", at)
	return 0
}

func TestNewGameStartingPosition(t *testing.T) {
	ctx := context.Background()
	g := game.NewGame(ctx)

	assert.Equal(t, chess.White, g.Turn())
	assert.Len(t, g.Pieces(), 32)

	moves, outcome := g.ValidMoves()
	require.Equal(t, chess.Ok, outcome)
	assert.NotEmpty(t, moves)
}

func TestResetRestoresStartingPosition(t *testing.T) {
	ctx := context.Background()
	g := game.NewGame(ctx)

	pawnID := pieceAt(t, g, sq(1, 4))
	require.NoError(t, g.Apply(ctx, pawnID, chess.Move{Kind: chess.PawnDoubleStep, TargetSquare: sq(3, 4)}, 0))
	require.Equal(t, chess.Black, g.Turn())

	g.Reset(ctx)
	assert.Equal(t, chess.White, g.Turn())
	assert.Len(t, g.Pieces(), 32)
}

func TestApplyPawnDoubleStepOpensEnPassantWindow(t *testing.T) {
	ctx := context.Background()
	g := game.NewGame(ctx)
	pawnID := pieceAt(t, g, sq(1, 4))

	require.NoError(t, g.Apply(ctx, pawnID, chess.Move{Kind: chess.PawnDoubleStep, TargetSquare: sq(3, 4)}, 0))

	moved, ok := g.Piece(pawnID)
	require.True(t, ok)
	assert.Equal(t, sq(3, 4), moved.Square)
	assert.Equal(t, chess.Black, g.Turn())

	landing, ok := g.Special().LastPawnDoubleStep.V()
	require.True(t, ok)
	assert.Equal(t, pawnID, landing.PawnID)
	assert.Equal(t, sq(3, 4), landing.Landing)
}

func TestApplyRejectsMoveNotInValidMoves(t *testing.T) {
	ctx := context.Background()
	g := game.NewGame(ctx)
	pawnID := pieceAt(t, g, sq(1, 4))

	err := g.Apply(ctx, pawnID, chess.Move{Kind: chess.Standard, TargetSquare: sq(5, 4)}, 0)
	assert.Error(t, err)
}

func TestApplyRejectsUnknownPieceID(t *testing.T) {
	ctx := context.Background()
	g := game.NewGame(ctx)

	err := g.Apply(ctx, chess.PieceID(9999), chess.Move{Kind: chess.Standard, TargetSquare: sq(2, 4)}, 0)
	assert.Error(t, err)
}

// TestQueensideCastleApply is the "apply and verify" half of scenario 5: once
// black's queenside castle is played, the king lands on c8 and the rook on
// d8, the corresponding castling flag is set, and it becomes white's move.
func TestQueensideCastleApply(t *testing.T) {
	ctx := context.Background()

	blackKingID := chess.PieceID(1)
	blackRookID := chess.PieceID(2)
	whiteKingID := chess.PieceID(3)

	pieces := []chess.Piece{
		{ID: blackKingID, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: blackRookID, Color: chess.Black, Kind: chess.Rook, Square: sq(7, 0)},
		{ID: whiteKingID, Color: chess.White, Kind: chess.King, Square: sq(0, 3)},
	}
	special := chess.SpecialMoveData{
		Castling: [chess.NumColors]chess.CastlingRights{
			chess.Black: {KingsideRookMoved: true},
		},
	}

	g := game.NewGameFromPieces(ctx, chess.Black, special, pieces)

	moves, outcome := g.ValidMoves()
	require.Equal(t, chess.Ok, outcome)

	var queenside chess.Move
	var found bool
	for _, m := range moves[blackKingID] {
		if m.Kind == chess.Castle && !m.Kingside {
			queenside = m
			found = true
		}
	}
	require.True(t, found, "queenside castle should be legal")

	require.NoError(t, g.Apply(ctx, blackKingID, queenside, 0))

	king, ok := g.Piece(blackKingID)
	require.True(t, ok)
	assert.Equal(t, sq(7, 2), king.Square)

	rook, ok := g.Piece(blackRookID)
	require.True(t, ok)
	assert.Equal(t, sq(7, 3), rook.Square)

	assert.True(t, g.Special().CastlingFor(chess.Black).KingMoved)
	assert.Equal(t, chess.White, g.Turn())
}

// TestApplyEnPassantRemovesCapturedPawn applies an en-passant capture (the
// two pawns of scenario 4, without the check) and confirms the double-stepped
// pawn is gone and the capturing pawn has landed behind it.
func TestApplyEnPassantRemovesCapturedPawn(t *testing.T) {
	ctx := context.Background()

	blackPawnID := chess.PieceID(1)
	whitePawnID := chess.PieceID(2)
	whiteKingID := chess.PieceID(3)
	blackKingID := chess.PieceID(4)

	pieces := []chess.Piece{
		{ID: whiteKingID, Color: chess.White, Kind: chess.King, Square: sq(0, 0)},
		{ID: blackKingID, Color: chess.Black, Kind: chess.King, Square: sq(7, 7)},
		{ID: blackPawnID, Color: chess.Black, Kind: chess.Pawn, Square: sq(4, 4)},
		{ID: whitePawnID, Color: chess.White, Kind: chess.Pawn, Square: sq(4, 5)},
	}
	special := chess.SpecialMoveData{
		LastPawnDoubleStep: lang.Some(chess.PawnDoubleStep{PawnID: blackPawnID, Landing: sq(4, 4)}),
	}

	g := game.NewGameFromPieces(ctx, chess.White, special, pieces)

	moves, _ := g.ValidMoves()
	var capture chess.Move
	var found bool
	for _, m := range moves[whitePawnID] {
		if m.Kind == chess.EnPassant {
			capture = m
			found = true
		}
	}
	require.True(t, found, "en passant capture should be legal")

	require.NoError(t, g.Apply(ctx, whitePawnID, capture, 0))

	_, stillThere := g.Piece(blackPawnID)
	assert.False(t, stillThere, "captured pawn should be removed from the board")

	mover, ok := g.Piece(whitePawnID)
	require.True(t, ok)
	assert.Equal(t, sq(5, 4), mover.Square)
}

// TestApplyPromotionMintsNewPieceID confirms a pawn reaching its final rank
// is replaced by a freshly-minted piece of the requested kind, under a new
// id, rather than having its kind mutated in place.
func TestApplyPromotionMintsNewPieceID(t *testing.T) {
	ctx := context.Background()

	pawnID := chess.PieceID(1)
	whiteKingID := chess.PieceID(2)
	blackKingID := chess.PieceID(3)

	pieces := []chess.Piece{
		{ID: whiteKingID, Color: chess.White, Kind: chess.King, Square: sq(0, 0)},
		{ID: blackKingID, Color: chess.Black, Kind: chess.King, Square: sq(7, 7)},
		{ID: pawnID, Color: chess.White, Kind: chess.Pawn, Square: sq(6, 4)},
	}

	g := game.NewGameFromPieces(ctx, chess.White, chess.SpecialMoveData{}, pieces)

	moves, _ := g.ValidMoves()
	require.NotEmpty(t, moves[pawnID])
	move := moves[pawnID][0]

	require.NoError(t, g.Apply(ctx, pawnID, move, chess.Queen))

	_, stillPawn := g.Piece(pawnID)
	assert.False(t, stillPawn, "old pawn id should no longer resolve")

	var promoted chess.Piece
	var found bool
	for _, p := range g.Pieces() {
		if p.Square == sq(7, 4) {
			promoted = p
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, chess.Queen, promoted.Kind)
	assert.NotEqual(t, pawnID, promoted.ID)
}

func TestApplyPromotionRejectsPawnOrKingKind(t *testing.T) {
	ctx := context.Background()

	pawnID := chess.PieceID(1)
	whiteKingID := chess.PieceID(2)
	blackKingID := chess.PieceID(3)

	pieces := []chess.Piece{
		{ID: whiteKingID, Color: chess.White, Kind: chess.King, Square: sq(0, 0)},
		{ID: blackKingID, Color: chess.Black, Kind: chess.King, Square: sq(7, 7)},
		{ID: pawnID, Color: chess.White, Kind: chess.Pawn, Square: sq(6, 4)},
	}

	g := game.NewGameFromPieces(ctx, chess.White, chess.SpecialMoveData{}, pieces)
	moves, _ := g.ValidMoves()
	move := moves[pawnID][0]

	err := g.Apply(ctx, pawnID, move, chess.King)
	assert.Error(t, err)

	err = g.Apply(ctx, pawnID, move, chess.Pawn)
	assert.Error(t, err)
}
