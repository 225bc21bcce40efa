package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
)

// TestCase 一个局面和它的全部合法走法，给别的实现做走法生成对拍
type TestCase struct {
	Board    string          `json:"board"`
	ToMove   string          `json:"to_move"`
	Moves    []checkers.Move `json:"moves"`
	Captures bool            `json:"captures"`
	Over     bool            `json:"over"`
}

// randomGames 随机走子，每个局面记一条
func randomGames(rng *rand.Rand, numGames, maxMoves int) []TestCase {
	var testCases []TestCase
	for g := 0; g < numGames; g++ {
		b := checkers.NewBoard()
		side := checkers.White
		for moveCount := 0; moveCount < maxMoves; moveCount++ {
			moves := b.GetAllMoves(side)
			over, _ := b.IsGameOver()
			testCases = append(testCases, TestCase{
				Board:    b.Encode(),
				ToMove:   side.String(),
				Moves:    moves,
				Captures: len(moves) > 0 && moves[0].IsCapture(),
				Over:     over,
			})
			if over || len(moves) == 0 {
				break
			}

			if !b.MakeMove(moves[rng.Intn(len(moves))]) {
				break
			}
			side = checkers.Opposite(side)
		}
	}
	return testCases
}

func main() {
	app := &cli.App{
		Name:  "gen_test_json",
		Usage: "dump random positions and their legal moves as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "move_gen_test_data.json", Usage: "output file"},
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of random games"},
			&cli.IntFlag{Name: "max-moves", Value: 300, Usage: "move cap per game"},
			&cli.Int64Flag{Name: "seed", Value: time.Now().UnixNano(), Usage: "random seed"},
		},
		Action: func(cCtx *cli.Context) error {
			rng := rand.New(rand.NewSource(cCtx.Int64("seed")))
			testCases := randomGames(rng, cCtx.Int("games"), cCtx.Int("max-moves"))

			file, err := json.MarshalIndent(testCases, "", "  ")
			if err != nil {
				return err
			}
			out := cCtx.String("out")
			if err := os.WriteFile(out, file, 0644); err != nil {
				return err
			}
			fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), cCtx.Int("games"), out)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
