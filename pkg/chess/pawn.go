package chess

// PawnMoves holds the up-to-four candidate squares for a pawn. Any field may
// be absent (its Has flag false): a pawn on the final rank yields all four
// absent, a pawn on the back files yields the diagonal on the missing side
// absent, and so on.
type PawnMoves struct {
	AdvanceOne, AdvanceTwo, AttackLeft, AttackRight PotentialMove
	HasAdvanceOne, HasAdvanceTwo, HasAttackLeft, HasAttackRight bool
}

// computePawnMoves returns a pawn's candidate squares. When attackEmptySquares
// is false (ordinary move generation) a diagonal is only reported if it
// holds an opposite-coloured piece. When true (king-safety queries) both
// diagonals are reported regardless of occupancy, since a pawn threatens
// those squares whether or not it could presently move to them.
func computePawnMoves(p Piece, board BoardState, attackEmptySquares bool) PawnMoves {
	if p.Kind != Pawn {
		panic("not a pawn")
	}

	var out PawnMoves
	if p.Square.Rank == p.Color.FinalRank() {
		return out
	}

	direction := p.Color.PawnDirection()
	rank, file := int(p.Square.Rank), int(p.Square.File)
	oneRank := rank + direction

	if board.IsEmpty(NewSquare(oneRank, file)) {
		out.AdvanceOne = PotentialMove{Kind: Standard, TargetSquare: NewSquare(oneRank, file)}
		out.HasAdvanceOne = true

		if p.Square.Rank == p.Color.StartingFrontRank() {
			twoRank := rank + 2*direction
			if board.IsEmpty(NewSquare(twoRank, file)) {
				out.AdvanceTwo = PotentialMove{Kind: PawnDoubleStep, TargetSquare: NewSquare(twoRank, file)}
				out.HasAdvanceTwo = true
			}
		}
	}

	if file != 0 {
		leftFile := file - 1
		diag := NewSquare(oneRank, leftFile)
		color, occupied := board.Get(diag)
		if attackEmptySquares || (occupied && color == p.Color.Opposite()) {
			out.AttackLeft = PotentialMove{Kind: Standard, TargetSquare: diag}
			out.HasAttackLeft = true
		}
	}
	if file != 7 {
		rightFile := file + 1
		diag := NewSquare(oneRank, rightFile)
		color, occupied := board.Get(diag)
		if attackEmptySquares || (occupied && color == p.Color.Opposite()) {
			out.AttackRight = PotentialMove{Kind: Standard, TargetSquare: diag}
			out.HasAttackRight = true
		}
	}

	return out
}

// pawnPaths wraps the normal-move-generation view of PawnMoves into the
// PiecePath shape shared with other piece kinds -- one single-square path
// per candidate, since pawns don't fit the sliding-ray model.
func pawnPaths(p Piece, board BoardState) []PiecePath {
	pm := computePawnMoves(p, board, false)

	var out []PiecePath
	add := func(has bool, move PotentialMove) {
		if has {
			out = append(out, NewPiecePath([]PotentialMove{move}, p.Color))
		}
	}
	add(pm.HasAdvanceOne, pm.AdvanceOne)
	add(pm.HasAdvanceTwo, pm.AdvanceTwo)
	add(pm.HasAttackLeft, pm.AttackLeft)
	add(pm.HasAttackRight, pm.AttackRight)
	return out
}
