// perft is a move-generation debugging tool. See:
// https://www.chessprogramming.org/Perft_Results. Unlike the classic
// pseudo-legal-move perft, this counts moves already filtered for legality,
// since that filtering is this engine's entire purpose.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvidchess/legalmove/pkg/chess"
	"github.com/corvidchess/legalmove/pkg/game"
	"github.com/corvidchess/legalmove/pkg/scenarios"
	"github.com/seekerror/logw"
)

var (
	depth        = flag.Int("depth", 4, "Search depth")
	scenarioName = flag.String("scenario", scenarios.Start.Name, "Starting scenario (see -scenario=list)")
	divide       = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *scenarioName == "list" {
		for _, s := range scenarios.All {
			fmt.Println(s.Name)
		}
		return
	}

	s, ok := scenarios.ByName(*scenarioName)
	if !ok {
		logw.Exitf(ctx, "Unknown scenario '%v'", *scenarioName)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		g := game.NewGameFromPieces(ctx, s.Turn, s.Special, s.Pieces)
		nodes := search(ctx, g, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", s.Name, i, nodes, duration.Microseconds())
	}
}

// search counts the legal-move tree below g to the given depth. Each branch
// applies a move to a freshly-constructed game rather than mutating g in
// place, since pkg/game deliberately offers no undo.
func search(ctx context.Context, g *game.Game, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	moves, outcome := g.ValidMoves()
	if outcome != chess.Ok {
		return 0
	}

	turn, special, pieces := g.Turn(), g.Special(), g.Pieces()

	var nodes int64
	for id, ms := range moves {
		for _, m := range ms {
			child := game.NewGameFromPieces(ctx, turn, special, pieces)
			if err := child.Apply(ctx, id, m, chess.Queen); err != nil {
				continue
			}

			count := search(ctx, child, depth-1, false)
			if d {
				fmt.Printf("%v %v: %v\n", id, m, count)
			}
			nodes += count
		}
	}
	return nodes
}
