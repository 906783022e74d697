package chess

import "fmt"

// PieceKind identifies a chess piece's movement rules, without color.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "?"
	}
}

// PieceID is an opaque handle identifying a piece across its lifetime on the
// board. The engine never dereferences an id -- it only stores and returns
// the ids it was given. Ids are minted by the collaborator that owns the
// game (see pkg/game), not by this package.
type PieceID uint32

func (id PieceID) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}

// Piece is a single piece on the board: its identity, color, kind and square.
// Pieces are immutable except for Square (updated on move) and, via
// replacement with a new PieceID, Kind (on promotion).
type Piece struct {
	ID     PieceID
	Color  Color
	Kind   PieceKind
	Square Square
}

func (p Piece) String() string {
	return fmt.Sprintf("%v %v@%v", p.Color, p.Kind, p.Square)
}
