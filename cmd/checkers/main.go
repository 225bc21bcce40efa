package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/config"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/gui"
	"checkers/internal/log2"
	httpserver "checkers/internal/server/http"
	"checkers/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "checkers",
		Usage: "play checkers against the computer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error",
				Value: cfg.LogLevel,
			},
			&cli.BoolFlag{
				Name:  "log-pretty",
				Usage: "human readable log output",
				Value: cfg.LogPretty,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs here while the terminal game runs",
			},
		},
		Before: func(cCtx *cli.Context) error {
			return log2.Configure(cCtx.String("log-level"), cCtx.Bool("log-pretty"))
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play in the terminal",
				Action: playAction,
			},
			{
				Name:  "gui",
				Usage: "play in a window",
				Action: func(cCtx *cli.Context) error {
					return gui.Run(engine.NewEngine())
				},
			},
			{
				Name:  "serve",
				Usage: "run the local play server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "listen address",
						Value:   cfg.Addr,
					},
					&cli.StringFlag{
						Name:  "web",
						Usage: "directory with index.html / js / css",
						Value: cfg.WebDir,
					},
					&cli.StringFlag{
						Name:  "cors",
						Usage: "allowed CORS origins, comma separated; empty disables CORS",
						Value: cfg.CORSOrigins,
					},
					&cli.DurationFlag{
						Name:  "game-ttl",
						Usage: "drop games idle for this long; 0 keeps them forever",
						Value: cfg.GameTTL,
					},
					&cli.BoolFlag{
						Name:  "open",
						Usage: "open the default browser once listening",
						Value: cfg.OpenBrowser,
					},
				},
				Action: serveAction,
			},
			{
				Name:  "debug",
				Usage: "print a position, its legal moves and the engine's choice",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "board",
						Usage: "encoded board, default is the initial position",
					},
					&cli.StringFlag{
						Name:  "side",
						Usage: "side to move: white or black",
						Value: "black",
					},
				},
				Action: debugAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers failed")
	}
}

func playAction(cCtx *cli.Context) error {
	// 终端归 TUI 用，日志会把画面打乱：要么写文件，要么关掉
	if path := cCtx.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := log2.ConfigureWriter(f, cCtx.String("log-level"), false); err != nil {
			return err
		}
	} else {
		log2.Disable()
	}
	return tui.Run(engine.NewEngine())
}

func serveAction(cCtx *cli.Context) error {
	addr := cCtx.String("addr")
	webDir := cCtx.String("web")

	games := game.NewManager()
	h := httpserver.NewHandler(games, engine.NewEngine())
	app := httpserver.NewApp(h, httpserver.Options{
		CORSOrigins: cCtx.String("cors"),
		WebDir:      webDir,
	})

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if ttl := cCtx.Duration("game-ttl"); ttl > 0 {
		go games.RunJanitor(ctx, time.Minute, ttl)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	log.Info().Str("addr", addr).Str("web", webDir).Msg("listening")

	if cCtx.Bool("open") {
		// 稍等一下再开浏览器，服务器可能还没起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser(browserURL(addr))
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func debugAction(cCtx *cli.Context) error {
	b := checkers.NewBoard()
	if s := cCtx.String("board"); s != "" {
		var err error
		if b, err = checkers.DecodeBoard(s); err != nil {
			return err
		}
	}
	side, err := checkers.ParseSide(cCtx.String("side"))
	if err != nil {
		return err
	}

	fmt.Println("Board:", b.Encode())
	fmt.Print(b.String())

	moves := b.GetAllMoves(side)
	fmt.Printf("%s legal moves: %d\n", side, len(moves))
	for _, mv := range moves {
		fmt.Println("  ", mv)
	}
	fmt.Println("Evaluation:", engine.Evaluate(b))

	if over, whiteWins := b.IsGameOver(); over {
		fmt.Println("Game over, white wins:", whiteWins)
		return nil
	}

	res := engine.NewEngine().BestMove(b, side)
	fmt.Printf("BestMove: %v, Score: %d, Nodes: %d, Time: %v\n",
		res.BestMove, res.Score, res.Nodes, res.TimeUsed)
	return nil
}
