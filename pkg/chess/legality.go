package chess

// safeKingMoves filters the king's raw path (a set of single-square paths)
// down to squares the enemy does not attack.
func safeKingMoves(king Piece, opponents []Piece, board BoardState, potential allPotentialMoves) []Move {
	var out []Move
	for _, path := range potential.paths(king.ID) {
		for _, m := range path.LegalPath() {
			if !squareIsAttacked(m.TargetSquare, king, opponents, board, potential) {
				out = append(out, m)
			}
		}
	}
	return out
}

// squareIsAttacked reports whether any opposite piece attacks target,
// accounting for the two subtleties called out in the legality filter:
// a capturing king isn't safe if removing the captured piece would expose
// it to an x-ray attacker, and the king can never shield itself from an
// attacker sliding through its own square.
func squareIsAttacked(target Square, king Piece, opponents []Piece, board BoardState, potential allPotentialMoves) bool {
	_, targetOccupied := board.Get(target)

	for _, piece := range opponents {
		if piece.Kind == Pawn {
			pm := computePawnMoves(piece, board, true)
			if (pm.HasAttackLeft && pm.AttackLeft.TargetSquare == target) ||
				(pm.HasAttackRight && pm.AttackRight.TargetSquare == target) {
				return true
			}
			continue
		}

		if targetOccupied {
			// The king would be capturing whatever sits on target. That's
			// unsafe if some other opponent's first obstruction along its own
			// ray, not counting the king itself, is precisely the captured
			// piece -- removing it would expose the king.
			for _, path := range potential.paths(piece.ID) {
				for _, o := range path.Obstructions() {
					if o.Square == king.Square {
						continue
					}
					if o.Square == target {
						return true
					}
					break
				}
			}
			continue
		}

		path, ok := potential.pathTo(piece.ID, target)
		if !ok {
			continue
		}
		obstructions := path.Obstructions()
		if len(obstructions) == 0 {
			return true
		}
		if len(obstructions) == 1 && obstructions[0].Square == king.Square {
			return true
		}
	}
	return false
}

// safePlayerMoves filters every non-king friendly piece's raw moves down to
// those that don't expose the king: a move is safe w.r.t. a given pin ray
// iff the piece isn't the shield on that ray, or the destination stays on
// the ray, or the destination captures the pinner.
func safePlayerMoves(playerPieces []Piece, king Piece, threats []threat, potential allPotentialMoves) map[PieceID][]Move {
	out := map[PieceID][]Move{}
	for _, piece := range playerPieces {
		if piece.ID == king.ID {
			continue
		}

		var safe []Move
		for _, path := range potential.paths(piece.ID) {
			for _, m := range path.LegalPath() {
				if isSafeAgainstPins(piece, m, threats) {
					safe = append(safe, m)
				}
			}
		}
		out[piece.ID] = safe
	}
	return out
}

func isSafeAgainstPins(piece Piece, move Move, threats []threat) bool {
	for _, t := range threats {
		currentlyInPath := t.path.Contains(piece.Square)
		staysInPath := t.path.Contains(move.TargetSquare)
		capturesThreat := move.TargetSquare == t.piece.Square
		if !(capturesThreat || !currentlyInPath || staysInPath) {
			return false
		}
	}
	return true
}

// checkCounterMoves restricts safe, pin-respecting moves further: under
// check, a non-king move must capture a checker, interpose on a checking
// ray, or (en passant) capture the checking pawn. The king's own safe moves
// need no further restriction -- squareIsAttacked already accounts for the
// check.
func checkCounterMoves(safeMoves map[PieceID][]Move, checkers []attacker) map[PieceID][]Move {
	out := map[PieceID][]Move{}
	for id, moves := range safeMoves {
		var counters []Move
		for _, m := range moves {
			if resolvesAllCheckers(m, checkers) {
				counters = append(counters, m)
			}
		}
		out[id] = counters
	}
	return out
}

func resolvesAllCheckers(move Move, checkers []attacker) bool {
	for _, c := range checkers {
		capturesEnPassant := move.Kind == EnPassant && move.CapturedPawnID == c.piece.ID
		capturesDirectly := move.TargetSquare == c.piece.Square
		blocksCheck := c.path.Contains(move.TargetSquare) && move.TargetSquare != c.piece.Square

		if !(capturesEnPassant || capturesDirectly || blocksCheck) {
			return false
		}
	}
	return true
}
