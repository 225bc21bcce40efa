package mobile

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"checkers/internal/engine"
	"checkers/internal/game"
	httpserver "checkers/internal/server/http"
)

var (
	mu  sync.Mutex
	app *fiber.App
)

// StartServer starts the local play server for an embedding app.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	mu.Lock()
	defer mu.Unlock()
	if app != nil {
		return
	}

	h := httpserver.NewHandler(game.NewManager(), engine.NewEngine())
	app = httpserver.NewApp(h, httpserver.Options{WebDir: webDir})

	// Run in background so it doesn't block the UI thread
	go func(a *fiber.App) {
		if err := a.Listen("127.0.0.1:" + port); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}(app)
}

// StopServer shuts down a server started by StartServer.
func StopServer() {
	mu.Lock()
	defer mu.Unlock()
	if app == nil {
		return
	}
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	app = nil
}
