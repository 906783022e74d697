// chessconsole is a line-oriented debugging driver for the move-legality
// engine: type coordinate moves ("e2e4", "e7e8q") against a position and
// watch the legal-move cache and outcome update.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/legalmove/pkg/game"
	"github.com/corvidchess/legalmove/pkg/game/console"
	"github.com/corvidchess/legalmove/pkg/scenarios"
)

var (
	scenario = flag.String("scenario", scenarios.Start.Name, "Starting scenario (see -scenario=list)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chessconsole [options]

chessconsole is a debugging console for the chess move-legality engine.
Commands: reset [scenario], print, moves, <move>, quit.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *scenario == "list" {
		for _, s := range scenarios.All {
			fmt.Println(s.Name)
		}
		return
	}

	s, ok := scenarios.ByName(*scenario)
	if !ok {
		flag.Usage()
		fmt.Fprintf(os.Stderr, "unknown scenario: %v\n", *scenario)
		os.Exit(1)
	}
	g := game.NewGameFromPieces(ctx, s.Turn, s.Special, s.Pieces)

	in := game.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, g, in)
	go game.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
