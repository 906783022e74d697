package game

import "github.com/corvidchess/legalmove/pkg/chess"

// placement is a starting-layout entry: a colour, kind and square, not yet
// assigned a PieceID.
type placement struct {
	Color chess.Color
	Kind  chess.PieceKind
	Square chess.Square
}

var backRank = []chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// startingLayout returns the standard 32-piece starting position: R N B Q K
// B N R on each colour's back rank, pawns on each colour's front rank.
func startingLayout() []placement {
	var out []placement
	for _, c := range []chess.Color{chess.White, chess.Black} {
		back := c.StartingBackRank()
		front := c.StartingFrontRank()
		for file, kind := range backRank {
			out = append(out, placement{Color: c, Kind: kind, Square: chess.NewSquare(int(back), file)})
		}
		for file := 0; file < 8; file++ {
			out = append(out, placement{Color: c, Kind: chess.Pawn, Square: chess.NewSquare(int(front), file)})
		}
	}
	return out
}
