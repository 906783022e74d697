package chess

// attacker pairs an opposite piece with its legal-move view of the path
// that reaches the friendly king, used to report checkers.
type attacker struct {
	piece Piece
	path  PiecePath
}

// piecesAttackingKing returns every opposite piece whose path to kingSquare
// is currently unblocked, i.e. every piece giving check.
func piecesAttackingKing(opponents []Piece, kingSquare Square, potential allPotentialMoves) []attacker {
	var out []attacker
	for _, piece := range opponents {
		path, ok := potential.pathTo(piece.ID, kingSquare)
		if !ok {
			continue
		}
		moves := path.LegalPath()
		for _, m := range moves {
			if m.TargetSquare == kingSquare {
				out = append(out, attacker{piece: piece, path: path})
				break
			}
		}
	}
	return out
}

// threat is an opposite slider with exactly one friendly piece standing
// between it and the king: that friendly piece is pinned along path.
type threat struct {
	piece Piece
	path  PiecePath
}

// potentialThreatsToKing returns every opposite slider that would check the
// king if its sole friendly obstruction were removed. Non-sliders (and
// pawns, which aren't path-based) never appear here since their paths have
// length one and can't have a friendly-piece-then-king shape.
func potentialThreatsToKing(opponents []Piece, turn Color, kingSquare Square, potential allPotentialMoves) []threat {
	var out []threat
	for _, piece := range opponents {
		path, ok := potential.pathTo(piece.ID, kingSquare)
		if !ok {
			continue
		}

		var obstructionsExcludingKing []Obstruction
		for _, o := range path.Obstructions() {
			if o.Square != kingSquare {
				obstructionsExcludingKing = append(obstructionsExcludingKing, o)
			}
		}

		// Blocked if 2+ obstructions besides the king, or the sole one is an
		// opposing (i.e. same-colour-as-attacker) piece: either way it can't
		// check the king this turn.
		blocked := len(obstructionsExcludingKing) >= 2
		for _, o := range obstructionsExcludingKing {
			if o.Color == turn.Opposite() {
				blocked = true
			}
		}
		if blocked {
			continue
		}
		if len(obstructionsExcludingKing) == 0 {
			// Direct check, not a pin: no friendly piece stands on the ray, so
			// this threat would never restrict any piece's moves below (every
			// piece fails "currently on this ray"). Safe to drop here.
			continue
		}

		out = append(out, threat{piece: piece, path: path})
	}
	return out
}
