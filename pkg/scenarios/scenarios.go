// Package scenarios holds named, hand-built positions used by the console
// and perft tools in place of FEN loading (parsing a textual board notation
// is out of scope for this engine). Each scenario is one of the worked
// examples the legality engine is built to get right: a check with a single
// defender, a forced checkmate, a stalemate, an en-passant rescue, and the
// two castling-eligibility edge cases.
package scenarios

import (
	"github.com/corvidchess/legalmove/pkg/chess"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Scenario is a named starting point for the console or perft tool: a side
// to move, special-move state and a full piece list.
type Scenario struct {
	Name    string
	Turn    chess.Color
	Special chess.SpecialMoveData
	Pieces  []chess.Piece
}

func sq(rank, file int) chess.Square { return chess.NewSquare(rank, file) }

func someDoubleStep(pawnID chess.PieceID, landing chess.Square) lang.Optional[chess.PawnDoubleStep] {
	return lang.Some(chess.PawnDoubleStep{PawnID: pawnID, Landing: landing})
}

// Start is the standard 32-piece opening position.
var Start = Scenario{
	Name: "start",
	Turn: chess.White,
	Pieces: func() []chess.Piece {
		var out []chess.Piece
		id := chess.PieceID(1)
		add := func(c chess.Color, k chess.PieceKind, s chess.Square) {
			out = append(out, chess.Piece{ID: id, Color: c, Kind: k, Square: s})
			id++
		}
		back := []chess.PieceKind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
		for _, c := range []chess.Color{chess.White, chess.Black} {
			for file, k := range back {
				add(c, k, sq(int(c.StartingBackRank()), file))
			}
			for file := 0; file < 8; file++ {
				add(c, chess.Pawn, sq(int(c.StartingFrontRank()), file))
			}
		}
		return out
	}(),
}

// KnightCheckOneDefender: black to move, in check from a knight, with
// exactly one pawn able to capture it.
var KnightCheckOneDefender = Scenario{
	Name: "knight-check",
	Turn: chess.Black,
	Pieces: []chess.Piece{
		{ID: 1, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: 2, Color: chess.White, Kind: chess.Knight, Square: sq(5, 3)},
		{ID: 3, Color: chess.Black, Kind: chess.Pawn, Square: sq(7, 3)},
		{ID: 4, Color: chess.Black, Kind: chess.Pawn, Square: sq(6, 3)},
		{ID: 5, Color: chess.Black, Kind: chess.Pawn, Square: sq(7, 5)},
		{ID: 6, Color: chess.Black, Kind: chess.Pawn, Square: sq(6, 5)},
		{ID: 7, Color: chess.Black, Kind: chess.Pawn, Square: sq(6, 4)},
		{ID: 100, Color: chess.White, Kind: chess.King, Square: sq(0, 0)},
	},
}

// CheckmateByKnightAndQueen: black is mated, a queen backing up the knight's
// check with no capture, block or king flight available.
var CheckmateByKnightAndQueen = Scenario{
	Name: "checkmate",
	Turn: chess.Black,
	Pieces: []chess.Piece{
		{ID: 1, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: 2, Color: chess.White, Kind: chess.Knight, Square: sq(5, 3)},
		{ID: 3, Color: chess.White, Kind: chess.Queen, Square: sq(5, 4)},
		{ID: 4, Color: chess.Black, Kind: chess.Pawn, Square: sq(7, 3)},
		{ID: 5, Color: chess.Black, Kind: chess.Pawn, Square: sq(6, 3)},
		{ID: 6, Color: chess.Black, Kind: chess.Pawn, Square: sq(7, 5)},
		{ID: 7, Color: chess.Black, Kind: chess.Pawn, Square: sq(6, 5)},
		{ID: 100, Color: chess.White, Kind: chess.King, Square: sq(0, 0)},
	},
}

// Stalemate: black to move, not in check, with no legal moves for any piece.
var Stalemate = Scenario{
	Name: "stalemate",
	Turn: chess.Black,
	Pieces: []chess.Piece{
		{ID: 1, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: 2, Color: chess.Black, Kind: chess.Pawn, Square: sq(6, 3)},
		{ID: 3, Color: chess.White, Kind: chess.Bishop, Square: sq(4, 1)},
		{ID: 4, Color: chess.White, Kind: chess.Rook, Square: sq(6, 7)},
		{ID: 5, Color: chess.White, Kind: chess.Rook, Square: sq(0, 5)},
		{ID: 6, Color: chess.White, Kind: chess.Queen, Square: sq(6, 2)},
		{ID: 100, Color: chess.White, Kind: chess.King, Square: sq(0, 0)},
	},
}

// EnPassantCapturesChecker: black just played a pawn double-step giving
// check; white's only escape is the en-passant capture of that pawn.
var EnPassantCapturesChecker = Scenario{
	Name: "en-passant",
	Turn: chess.White,
	Special: chess.SpecialMoveData{
		LastPawnDoubleStep: someDoubleStep(1, sq(4, 4)),
		Castling: [chess.NumColors]chess.CastlingRights{
			chess.White: {KingMoved: true},
			chess.Black: {KingMoved: true},
		},
	},
	Pieces: []chess.Piece{
		{ID: 100, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: 2, Color: chess.White, Kind: chess.King, Square: sq(3, 3)},
		{ID: 1, Color: chess.Black, Kind: chess.Pawn, Square: sq(4, 4)},
		{ID: 3, Color: chess.White, Kind: chess.Pawn, Square: sq(4, 5)},
		{ID: 4, Color: chess.Black, Kind: chess.Rook, Square: sq(0, 4)},
		{ID: 5, Color: chess.Black, Kind: chess.Rook, Square: sq(0, 2)},
		{ID: 6, Color: chess.Black, Kind: chess.Rook, Square: sq(4, 0)},
		{ID: 7, Color: chess.Black, Kind: chess.Rook, Square: sq(2, 0)},
	},
}

// QueensideCastleAvailable: black's queenside castle is legal; black has no
// kingside rook and its kingside-rook flag is preset, so only queenside shows.
var QueensideCastleAvailable = Scenario{
	Name: "queenside-castle",
	Turn: chess.Black,
	Special: chess.SpecialMoveData{
		Castling: [chess.NumColors]chess.CastlingRights{
			chess.Black: {KingsideRookMoved: true},
		},
	},
	Pieces: []chess.Piece{
		{ID: 1, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: 2, Color: chess.Black, Kind: chess.Rook, Square: sq(7, 0)},
		{ID: 3, Color: chess.White, Kind: chess.King, Square: sq(0, 3)},
	},
}

// CastlingBlockedByTransitAttack: white's queenside castle is geometrically
// clear but passes through an attacked square; only the kingside castle is
// legal.
var CastlingBlockedByTransitAttack = Scenario{
	Name: "castling-blocked",
	Turn: chess.White,
	Pieces: []chess.Piece{
		{ID: 1, Color: chess.White, Kind: chess.King, Square: sq(0, 4)},
		{ID: 2, Color: chess.White, Kind: chess.Rook, Square: sq(0, 0)},
		{ID: 3, Color: chess.White, Kind: chess.Rook, Square: sq(0, 7)},
		{ID: 4, Color: chess.Black, Kind: chess.King, Square: sq(7, 4)},
		{ID: 5, Color: chess.Black, Kind: chess.Knight, Square: sq(2, 2)},
	},
}

// All lists every named scenario, in a stable order, for -scenario usage text.
var All = []Scenario{
	Start,
	KnightCheckOneDefender,
	CheckmateByKnightAndQueen,
	Stalemate,
	EnPassantCapturesChecker,
	QueensideCastleAvailable,
	CastlingBlockedByTransitAttack,
}

// ByName looks up a scenario by its Name field.
func ByName(name string) (Scenario, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
