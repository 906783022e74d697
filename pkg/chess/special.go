package chess

import "github.com/seekerror/stdlib/pkg/lang"

// PawnDoubleStep records the pawn and landing square of the most recent
// double-step push, which opens an en-passant window for exactly the
// following turn.
type PawnDoubleStep struct {
	PawnID  PieceID
	Landing Square
}

// CastlingRights are the monotonic castling-eligibility flags for one
// colour. None of these ever clear once set.
type CastlingRights struct {
	KingMoved         bool
	KingsideRookMoved bool
	QueensideRookMoved bool
}

// SpecialMoveData is the process-wide, per-game state the engine reads but
// never writes: the en-passant window and the castling-eligibility flags.
// It is an explicit value owned and mutated by the game layer (pkg/game),
// never a package-level singleton.
type SpecialMoveData struct {
	LastPawnDoubleStep lang.Optional[PawnDoubleStep]
	Castling           [NumColors]CastlingRights
}

// CastlingFor returns the castling rights for the given colour.
func (d SpecialMoveData) CastlingFor(c Color) CastlingRights {
	return d.Castling[c]
}
