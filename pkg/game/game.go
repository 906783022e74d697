// Package game is the reference collaborator: it owns piece-id issuance,
// applies confirmed moves, and mutates SpecialMoveData, per the contract
// pkg/chess leaves to its caller. It is the minimal stand-in for a 3D
// front-end's picking/animation state machine: a mutex-guarded, logged
// wrapper around the piece list that owns turn order.
package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/legalmove/pkg/chess"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Game is a single running chess game: the piece list, the side to move,
// special-move state, and the cached legal-move computation for the current
// turn. Not safe for concurrent use except through its own methods.
type Game struct {
	mu sync.Mutex

	pieces  map[chess.PieceID]chess.Piece
	nextID  chess.PieceID
	turn    chess.Color
	special chess.SpecialMoveData

	cache   chess.AllValidMoves
	outcome chess.Outcome
}

// NewGame returns a new game in the standard starting position.
func NewGame(ctx context.Context) *Game {
	g := &Game{}
	g.resetLocked(ctx)

	logw.Infof(ctx, "Initialized game %v", version)
	return g
}

// Reset re-instantiates the standard starting layout and clears all
// special-move state.
func (g *Game) Reset(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetLocked(ctx)
}

// NewGameFromPieces builds a game from an arbitrary, already-assigned piece
// list and special-move state, skipping the standard layout. Used by the
// scenario-driven console and perft tools, and by tests that need a position
// other than the opening one.
func NewGameFromPieces(ctx context.Context, turn chess.Color, special chess.SpecialMoveData, pieces []chess.Piece) *Game {
	g := &Game{
		pieces:  map[chess.PieceID]chess.Piece{},
		turn:    turn,
		special: special,
	}
	for _, p := range pieces {
		g.pieces[p.ID] = p
		if p.ID >= g.nextID {
			g.nextID = p.ID + 1
		}
	}
	g.recomputeLocked()

	logw.Infof(ctx, "Initialized game %v from %d pieces, %v to move", version, len(pieces), turn)
	return g
}

func (g *Game) resetLocked(ctx context.Context) {
	g.pieces = map[chess.PieceID]chess.Piece{}
	g.nextID = 1
	g.turn = chess.White
	g.special = chess.SpecialMoveData{}

	for _, pl := range startingLayout() {
		id := g.nextID
		g.nextID++
		g.pieces[id] = chess.Piece{ID: id, Color: pl.Color, Kind: pl.Kind, Square: pl.Square}
	}

	g.recomputeLocked()
	logw.Infof(ctx, "Reset to starting position")
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Color {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.turn
}

// Special returns a copy of the current special-move state.
func (g *Game) Special() chess.SpecialMoveData {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.special
}

// Piece returns the piece with the given id, if it is still on the board.
func (g *Game) Piece(id chess.PieceID) (chess.Piece, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pieces[id]
	return p, ok
}

// Pieces returns every piece currently on the board, both colours.
func (g *Game) Pieces() []chess.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]chess.Piece, 0, len(g.pieces))
	for _, p := range g.pieces {
		out = append(out, p)
	}
	return out
}

// ValidMoves returns the cached legal-move computation for the side to move.
// The cache is rebuilt on every successful Apply and on Reset.
func (g *Game) ValidMoves() (chess.AllValidMoves, chess.Outcome) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.cache, g.outcome
}

func (g *Game) recomputeLocked() {
	pieces := make([]chess.Piece, 0, len(g.pieces))
	for _, p := range g.pieces {
		pieces = append(pieces, p)
	}
	g.cache, g.outcome = chess.CalculateValidMoves(g.turn, g.special, pieces)
}

// Apply applies a move that must appear in the current ValidMoves list for
// pieceID. Unlike the pure engine (which panics on invariant violations),
// Apply returns an error for an unknown piece id or an illegal move request:
// this boundary sits between the engine and a driver reading user/network
// input, not inside the pure computation itself.
//
// promotion is consulted only when the move lands a pawn on its final rank;
// it must be one of Queen, Rook, Bishop, Knight.
func (g *Game) Apply(ctx context.Context, pieceID chess.PieceID, move chess.Move, promotion chess.PieceKind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome != chess.Ok {
		return fmt.Errorf("game is over: %v", g.outcome)
	}

	mover, ok := g.pieces[pieceID]
	if !ok {
		return fmt.Errorf("unknown piece %v", pieceID)
	}

	legal, ok := g.cache[pieceID]
	if !ok || !containsMove(legal, move) {
		return fmt.Errorf("move %v is not legal for %v", move, pieceID)
	}

	promoting := mover.Kind == chess.Pawn && move.TargetSquare.Rank == mover.Color.FinalRank()
	if promoting && promotion != chess.Queen && promotion != chess.Rook && promotion != chess.Bishop && promotion != chess.Knight {
		return fmt.Errorf("invalid promotion kind: %v", promotion)
	}

	origin := mover.Square
	next := g.special
	next.LastPawnDoubleStep = lang.Optional[chess.PawnDoubleStep]{}

	switch move.Kind {
	case chess.Standard:
		g.captureAt(move.TargetSquare, mover.Color, &next)
		mover.Square = move.TargetSquare

	case chess.PawnDoubleStep:
		mover.Square = move.TargetSquare
		next.LastPawnDoubleStep = lang.Some(chess.PawnDoubleStep{PawnID: pieceID, Landing: move.TargetSquare})

	case chess.EnPassant:
		delete(g.pieces, move.CapturedPawnID)
		mover.Square = move.TargetSquare

	case chess.Castle:
		mover.Square = chess.NewSquare(int(origin.Rank), int(move.KingTargetFile))
		rook := g.pieces[move.RookID]
		rook.Square = chess.NewSquare(int(move.RookFrom.Rank), int(move.RookTargetFile))
		g.pieces[move.RookID] = rook
	}

	if mover.Kind == chess.King {
		next.Castling[mover.Color].KingMoved = true
	}
	if mover.Kind == chess.Rook && isRookStartingSquare(mover.Color, origin) {
		setRookFlag(&next.Castling[mover.Color], origin.File)
	}

	if promoting {
		delete(g.pieces, pieceID)
		newID := g.nextID
		g.nextID++
		g.pieces[newID] = chess.Piece{ID: newID, Color: mover.Color, Kind: promotion, Square: mover.Square}
	} else {
		g.pieces[pieceID] = mover
	}

	g.special = next
	g.turn = g.turn.Opposite()
	g.recomputeLocked()

	logw.Infof(ctx, "applied %v %v -> %v (%v)", mover.Color, pieceID, move, move.Kind)
	if g.outcome != chess.Ok {
		logw.Infof(ctx, "%v: %v", g.outcome, g.turn)
	}
	return nil
}

// captureAt removes any enemy piece standing on target, recording the
// opponent's castling-flag mutation if the captured piece was a rook still
// on its starting square.
func (g *Game) captureAt(target chess.Square, moverColor chess.Color, special *chess.SpecialMoveData) {
	for id, p := range g.pieces {
		if p.Square != target || p.Color == moverColor {
			continue
		}
		if p.Kind == chess.Rook && isRookStartingSquare(p.Color, p.Square) {
			setRookFlag(&special.Castling[p.Color], p.Square.File)
		}
		delete(g.pieces, id)
		return
	}
}

func isRookStartingSquare(c chess.Color, sq chess.Square) bool {
	return sq.Rank == c.StartingBackRank() && (sq.File == 0 || sq.File == 7)
}

func setRookFlag(rights *chess.CastlingRights, file chess.File) {
	if file == 0 {
		rights.QueensideRookMoved = true
	} else {
		rights.KingsideRookMoved = true
	}
}

func containsMove(moves []chess.Move, move chess.Move) bool {
	for _, m := range moves {
		if m.Kind == move.Kind && m.TargetSquare == move.TargetSquare {
			return true
		}
	}
	return false
}
