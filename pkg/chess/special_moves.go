package chess

// findEnPassantMove returns the extra EnPassant PiecePath for pawn, if it is
// adjacent to the pawn that double-stepped on the previous move and can capture
// it. There is at most one such move per pawn (left or right), since a pawn
// has only two neighbouring files.
func findEnPassantMove(pawn Piece, special SpecialMoveData) (PiecePath, bool) {
	step, ok := special.LastPawnDoubleStep.V()
	if !ok {
		return PiecePath{}, false
	}
	if pawn.Kind != Pawn || pawn.Square.Rank != step.Landing.Rank {
		return PiecePath{}, false
	}

	fileDelta := int(pawn.Square.File) - int(step.Landing.File)
	if fileDelta != 1 && fileDelta != -1 {
		return PiecePath{}, false
	}

	direction := pawn.Color.PawnDirection()
	target := NewSquare(int(pawn.Square.Rank)+direction, int(step.Landing.File))

	// This move can never be blocked: if a piece stood on target, the enemy
	// pawn could not have double-stepped over it to begin with.
	move := PotentialMove{Kind: EnPassant, TargetSquare: target, CapturedPawnID: step.PawnID}
	return NewPiecePath([]PotentialMove{move}, pawn.Color), true
}

// castlingMoves returns the available castling moves for the king, given its
// own eligibility flags and the enemy's raw path set (used to check the
// king's transit squares for attacks). Only a king standing on its home
// square (file 4 of its back rank) can castle.
func castlingMoves(king Piece, playerPieces, opponents []Piece, board BoardState, special SpecialMoveData, potential allPotentialMoves, inCheck bool) []Move {
	rights := special.CastlingFor(king.Color)
	home := NewSquare(int(king.Color.StartingBackRank()), 4)
	if rights.KingMoved || inCheck || king.Square != home {
		return nil
	}

	rank := king.Square.Rank
	transitIsSafe := func(dir int) bool {
		first := NewSquare(int(rank), int(king.Square.File)+dir)
		second := NewSquare(int(rank), int(king.Square.File)+2*dir)

		if !board.IsEmpty(first) || !board.IsEmpty(second) {
			return false
		}
		for _, opp := range opponents {
			if potential.canReach(opp.ID, first) || potential.canReach(opp.ID, second) {
				return false
			}
		}
		return true
	}

	findRook := func(file File) (Piece, bool) {
		for _, p := range playerPieces {
			if p.Kind == Rook && p.Square.Rank == rank && p.Square.File == file {
				return p, true
			}
		}
		return Piece{}, false
	}

	var out []Move

	if !rights.QueensideRookMoved {
		passedThrough := NewSquare(int(rank), int(king.Square.File)-3)
		if transitIsSafe(-1) && board.IsEmpty(passedThrough) {
			if rook, ok := findRook(0); ok {
				out = append(out, Move{
					Kind:           Castle,
					TargetSquare:   rook.Square,
					RookID:         rook.ID,
					RookFrom:       rook.Square,
					KingTargetFile: 2,
					RookTargetFile: 3,
					Kingside:       false,
				})
			}
		}
	}

	if !rights.KingsideRookMoved && transitIsSafe(1) {
		if rook, ok := findRook(7); ok {
			out = append(out, Move{
				Kind:           Castle,
				TargetSquare:   rook.Square,
				RookID:         rook.ID,
				RookFrom:       rook.Square,
				KingTargetFile: 6,
				RookTargetFile: 5,
				Kingside:       true,
			})
		}
	}

	return out
}
