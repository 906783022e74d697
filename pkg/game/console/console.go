// Package console implements a line-oriented debugging driver for pkg/game,
// in the shape of the stateful engine's own console protocol: read a line,
// mutate or query the game, write lines back. There is no search or
// analysis here -- this engine only classifies legality and outcome.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/legalmove/pkg/chess"
	"github.com/corvidchess/legalmove/pkg/game"
	"github.com/corvidchess/legalmove/pkg/scenarios"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver reads move/query commands from in and writes board output to the
// returned channel, until in is closed or Close is called.
type Driver struct {
	iox.AsyncCloser

	g *game.Game

	out chan<- string
}

// NewDriver starts a driver over g, reading commands from in.
func NewDriver(ctx context.Context, g *game.Game, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		g:           g,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}
			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				name := scenarios.Start.Name
				if len(args) > 0 {
					name = args[0]
				}
				s, ok := scenarios.ByName(name)
				if !ok {
					d.out <- fmt.Sprintf("unknown scenario: %v", name)
					break
				}
				d.g = game.NewGameFromPieces(ctx, s.Turn, s.Special, s.Pieces)
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "moves", "m":
				d.printMoves(ctx)

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				if err := d.applyCoordinateMove(ctx, cmd); err != nil {
					d.out <- fmt.Sprintf("invalid move '%v': %v", cmd, err)
				} else {
					d.printBoard(ctx)
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// applyCoordinateMove interprets a 4- or 5-character coordinate string, e.g.
// "e2e4" or "e7e8q" for a queen promotion, against the side to move's cached
// legal moves.
func (d *Driver) applyCoordinateMove(ctx context.Context, text string) error {
	if len(text) != 4 && len(text) != 5 {
		return fmt.Errorf("expected 4 or 5 characters, got %q", text)
	}
	from, err := parseSquare(text[0:2])
	if err != nil {
		return err
	}
	to, err := parseSquare(text[2:4])
	if err != nil {
		return err
	}
	promotion := chess.Queen
	if len(text) == 5 {
		promotion, err = parsePromotion(text[4])
		if err != nil {
			return err
		}
	}

	moves, _ := d.g.ValidMoves()
	for _, p := range d.g.Pieces() {
		if p.Square != from {
			continue
		}
		for _, m := range moves[p.ID] {
			if destinationOf(m) == to {
				return d.g.Apply(ctx, p.ID, m, promotion)
			}
		}
		return fmt.Errorf("no legal move %v-%v", from, to)
	}
	return fmt.Errorf("no piece on %v", from)
}

// destinationOf returns the square a move actually lands on, which for
// Castle moves is the king's destination rather than Move.TargetSquare (the
// rook's starting square).
func destinationOf(m chess.Move) chess.Square {
	if m.Kind == chess.Castle {
		return chess.NewSquare(int(m.RookFrom.Rank), int(m.KingTargetFile))
	}
	return m.TargetSquare
}

func parseSquare(s string) (chess.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.Square{}, fmt.Errorf("bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank, _ := strconv.Atoi(string(s[1]))
	return chess.NewSquare(rank-1, file), nil
}

func parsePromotion(b byte) (chess.PieceKind, error) {
	switch b {
	case 'q':
		return chess.Queen, nil
	case 'r':
		return chess.Rook, nil
	case 'b':
		return chess.Bishop, nil
	case 'n':
		return chess.Knight, nil
	default:
		return 0, fmt.Errorf("bad promotion piece %q", b)
	}
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard(ctx context.Context) {
	pieces := map[chess.Square]chess.Piece{}
	for _, p := range d.g.Pieces() {
		pieces[p.Square] = p
	}

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(rank+1) + vertical)
		for file := 0; file < 8; file++ {
			if p, ok := pieces[chess.NewSquare(rank, file)]; ok {
				sb.WriteString(printPiece(p))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""

	_, outcome := d.g.ValidMoves()
	d.out <- fmt.Sprintf("turn: %v, outcome: %v", d.g.Turn(), outcome)
	if outcome != chess.Ok {
		d.out <- fmt.Sprintf("%v for %v. Type 'reset' to restart.", outcome, d.g.Turn())
	}
	d.out <- ""
}

func (d *Driver) printMoves(ctx context.Context) {
	moves, outcome := d.g.ValidMoves()
	d.out <- fmt.Sprintf("outcome: %v", outcome)
	for _, p := range d.g.Pieces() {
		ms := moves[p.ID]
		if len(ms) == 0 {
			continue
		}
		var dsts []string
		for _, m := range ms {
			dsts = append(dsts, destinationOf(m).String())
		}
		d.out <- fmt.Sprintf("%v %v: %v", p, p.ID, strings.Join(dsts, " "))
	}
}

func printPiece(p chess.Piece) string {
	s := pieceLetter(p.Kind)
	if p.Color == chess.White {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

func pieceLetter(k chess.PieceKind) string {
	switch k {
	case chess.King:
		return "K"
	case chess.Queen:
		return "Q"
	case chess.Rook:
		return "R"
	case chess.Bishop:
		return "B"
	case chess.Knight:
		return "N"
	case chess.Pawn:
		return "P"
	default:
		return "?"
	}
}
