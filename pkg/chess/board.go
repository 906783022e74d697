package chess

// BoardState is a dense 8x8 colour-occupancy snapshot derived from a piece
// list. It records only colour, never kind or id -- kind/id lookups go
// through the piece list itself. A plain array rather than a bitboard,
// since the ray generator needs ordered per-square colour lookups rather
// than bitwise ray masks.
type BoardState struct {
	squares [64]occupant
}

type occupant struct {
	color Color
	set   bool
}

// NewBoardState derives a board snapshot from the given pieces. Panics if two
// pieces occupy the same square -- that is an invariant violation, not a
// legality question.
func NewBoardState(pieces []Piece) BoardState {
	var b BoardState
	for _, p := range pieces {
		i := p.Square.index()
		if b.squares[i].set {
			panic("duplicate piece placement at " + p.Square.String())
		}
		b.squares[i] = occupant{color: p.Color, set: true}
	}
	return b
}

// Get returns the occupying colour and whether the square is occupied.
func (b BoardState) Get(sq Square) (Color, bool) {
	o := b.squares[sq.index()]
	return o.color, o.set
}

// IsEmpty returns true iff no piece occupies the square.
func (b BoardState) IsEmpty(sq Square) bool {
	return !b.squares[sq.index()].set
}
