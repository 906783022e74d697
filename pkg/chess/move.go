package chess

import "fmt"

// MoveKind distinguishes the handful of move shapes the engine must treat
// specially, either for the legality filter (en passant, castling both move
// two pieces and must pass through the same filter as any other move) or for
// the game layer's bookkeeping (a pawn double-step opens an en-passant
// window for the following turn).
type MoveKind uint8

const (
	Standard MoveKind = iota
	PawnDoubleStep
	EnPassant
	Castle
)

func (k MoveKind) String() string {
	switch k {
	case Standard:
		return "Standard"
	case PawnDoubleStep:
		return "PawnDoubleStep"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	default:
		return "?"
	}
}

// Move is a legal (or potential, before filtering) move, tagged with enough
// metadata to apply it without re-deriving it from the board.
//
// For Castle moves, TargetSquare is the ROOK's starting square, not the
// king's destination -- the king moves to KingTargetFile and the rook to
// RookTargetFile on the same rank as RookFrom. This mirrors the moves the
// move was generated from: a castle is discovered by the king "capturing"
// its own rook.
type Move struct {
	Kind         MoveKind
	TargetSquare Square

	// CapturedPawnID is set only for EnPassant: the id of the pawn removed
	// from the rank the moving pawn departed.
	CapturedPawnID PieceID

	// Castle-only fields.
	RookID         PieceID
	RookFrom       Square
	KingTargetFile File
	RookTargetFile File
	Kingside       bool
}

func (m Move) String() string {
	switch m.Kind {
	case Castle:
		side := "O-O-O"
		if m.Kingside {
			side = "O-O"
		}
		return side
	case EnPassant:
		return fmt.Sprintf("%ve.p.", m.TargetSquare)
	default:
		return m.TargetSquare.String()
	}
}

// PotentialMove is a single candidate square along a ray, not yet filtered
// for legality: blocked_by records the colour of any piece presently
// occupying the square, if any.
type PotentialMove struct {
	Kind         MoveKind
	TargetSquare Square
	BlockedBy    Color
	Blocked      bool

	// Set only when Kind == EnPassant.
	CapturedPawnID PieceID
}

func (pm PotentialMove) toMove() Move {
	return Move{Kind: pm.Kind, TargetSquare: pm.TargetSquare, CapturedPawnID: pm.CapturedPawnID}
}

// Obstruction records one occupied square along a ray.
type Obstruction struct {
	Square Square
	Color  Color
}

// PiecePath is an ordered sequence of PotentialMoves along a single ray,
// fully extended to the board edge (even past the first blocker) so that
// the threat analyser can reason about x-rays. Squares are monotonically
// ordered outward from the piece.
type PiecePath struct {
	moves []PotentialMove
	color Color
}

// NewPiecePath wraps a slice of potential moves as a path for the given
// piece colour. Returns the zero path (Len()==0) for an empty slice.
func NewPiecePath(moves []PotentialMove, color Color) PiecePath {
	return PiecePath{moves: moves, color: color}
}

// Len returns the number of candidate squares on the ray.
func (p PiecePath) Len() int {
	return len(p.moves)
}

// LegalPath yields the prefix of the ray that is actually reachable: every
// unblocked square, plus -- if the first blocker is an opposite-coloured
// piece -- the capture on that square. Stops at (and excludes) a
// same-coloured blocker.
func (p PiecePath) LegalPath() []Move {
	var out []Move
	for _, pm := range p.moves {
		if !pm.Blocked {
			out = append(out, pm.toMove())
			continue
		}
		if pm.BlockedBy == p.color.Opposite() {
			out = append(out, pm.toMove())
		}
		break
	}
	return out
}

// Contains returns true iff the square appears anywhere on the (unfiltered) ray.
func (p PiecePath) Contains(sq Square) bool {
	for _, pm := range p.moves {
		if pm.TargetSquare == sq {
			return true
		}
	}
	return false
}

// TruncateTo returns the prefix of the ray ending at (and including) square,
// if square appears on the path; the second return is false otherwise.
func (p PiecePath) TruncateTo(sq Square) (PiecePath, bool) {
	if !p.Contains(sq) {
		return PiecePath{}, false
	}
	out := make([]PotentialMove, 0, len(p.moves))
	for _, pm := range p.moves {
		out = append(out, pm)
		if pm.TargetSquare == sq {
			break
		}
	}
	return PiecePath{moves: out, color: p.color}, true
}

// Obstructions returns every occupied square on the ray, in ray order.
// Rays are retained past the first blocker, so this can have more than one
// entry.
func (p PiecePath) Obstructions() []Obstruction {
	var out []Obstruction
	for _, pm := range p.moves {
		if pm.Blocked {
			out = append(out, Obstruction{Square: pm.TargetSquare, Color: pm.BlockedBy})
		}
	}
	return out
}
