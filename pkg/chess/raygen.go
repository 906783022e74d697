package chess

// direction is a (rank, file) delta used to walk a ray outward from a square.
type direction struct {
	dRank, dFile int
}

var (
	orthogonal = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royal      = append(append([]direction{}, orthogonal...), diagonal...) // king step + queen rays share this set
	knightHops = []direction{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// ValidMoves returns the piece's candidate paths on the given board, fully
// extended to the board edge. Sliding pieces (queen, rook, bishop) produce
// one PiecePath per ray; jumping pieces (king, knight) produce one
// single-square PiecePath per destination that lies on the board; pawns
// are delegated to pawnPaths.
func ValidMoves(p Piece, board BoardState) []PiecePath {
	switch p.Kind {
	case King:
		return singleStepPaths(p, board, royal)
	case Queen:
		return slidingPaths(p, board, royal)
	case Rook:
		return slidingPaths(p, board, orthogonal)
	case Bishop:
		return slidingPaths(p, board, diagonal)
	case Knight:
		return singleStepPaths(p, board, knightHops)
	case Pawn:
		return pawnPaths(p, board)
	default:
		panic("unhandled piece kind")
	}
}

func candidate(sq Square, board BoardState) PotentialMove {
	color, occupied := board.Get(sq)
	return PotentialMove{Kind: Standard, TargetSquare: sq, BlockedBy: color, Blocked: occupied}
}

func singleStepPaths(p Piece, board BoardState, dirs []direction) []PiecePath {
	var out []PiecePath
	for _, d := range dirs {
		rank, file := int(p.Square.Rank)+d.dRank, int(p.Square.File)+d.dFile
		if rank < 0 || rank > 7 || file < 0 || file > 7 {
			continue
		}
		sq := NewSquare(rank, file)
		out = append(out, NewPiecePath([]PotentialMove{candidate(sq, board)}, p.Color))
	}
	return out
}

func slidingPaths(p Piece, board BoardState, dirs []direction) []PiecePath {
	var out []PiecePath
	for _, d := range dirs {
		var moves []PotentialMove
		rank, file := int(p.Square.Rank)+d.dRank, int(p.Square.File)+d.dFile
		for rank >= 0 && rank <= 7 && file >= 0 && file <= 7 {
			sq := NewSquare(rank, file)
			moves = append(moves, candidate(sq, board))
			rank += d.dRank
			file += d.dFile
		}
		if len(moves) > 0 {
			out = append(out, NewPiecePath(moves, p.Color))
		}
	}
	return out
}
