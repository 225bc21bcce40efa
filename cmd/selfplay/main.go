package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/engine"
	"checkers/internal/log2"
)

func main() {
	app := &cli.App{
		Name:  "selfplay",
		Usage: "let the engine play itself",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
			},
		},
		Before: func(cCtx *cli.Context) error {
			return log2.Configure(cCtx.String("log-level"), true)
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "play one game and print every move",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-moves",
						Usage: "declare a draw after this many moves",
						Value: 200,
					},
				},
				Action: func(cCtx *cli.Context) error {
					res := playGame(engine.NewEngine(), cCtx.Int("max-moves"), func(ply int, t turn) {
						fmt.Printf("%3d. %-5s %-14v score %5d  nodes %6d  %v\n",
							ply, t.Side, t.Result.BestMove, t.Result.Score, t.Result.Nodes, t.Result.TimeUsed)
					})
					fmt.Printf("\nResult: %s after %d moves (white %d, black %d)\n",
						res.Outcome(), res.Moves, res.WhitePieces, res.BlackPieces)
					return nil
				},
			},
			{
				Name:  "bench",
				Usage: "time the search on the positions of a self-play game",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "positions",
						Usage: "number of positions to search",
						Value: 40,
					},
				},
				Action: func(cCtx *cli.Context) error {
					b := runBench(engine.NewEngine(), cCtx.Int("positions"))
					fmt.Printf("positions: %d  nodes: %d  time: %v  NPS: %d\n",
						b.Positions, b.Nodes, b.Elapsed, b.NPS())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}
}
