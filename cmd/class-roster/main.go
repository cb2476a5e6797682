// main is the entry point of the class roster program.
//
// STARTUP SEQUENCE:
//  1. Load configuration (CONFIG_PATH yaml file and/or env vars)
//  2. Initialise the logger (stderr — stdout belongs to the menu)
//  3. Build the storage backend named in the config
//  4. Wire console → view → session and run the menu loop
//  5. Exit 0 after the goodbye banner
//
// RUNNING:
//
//	go run ./cmd/class-roster
//
// or with a config file:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/class-roster
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/aanand-mishra/class-roster/internal/config"
	"github.com/aanand-mishra/class-roster/internal/session"
	"github.com/aanand-mishra/class-roster/internal/storage/backend"
	"github.com/aanand-mishra/class-roster/internal/utils/console"
	"github.com/aanand-mishra/class-roster/internal/view"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, os.Stderr)
	// Handlers and backends log through the default logger.
	slog.SetDefault(log)

	log.Info("starting class-roster",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend))

	// We keep the result as the storage.Storage INTERFACE: the session
	// never learns which backend it is talking to.
	store, closer, err := backend.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	controller := session.New(store, view.New(console.New(os.Stdin, os.Stdout)))
	runErr := controller.Run()

	if err := closer.Close(); err != nil {
		log.Error("failed to close storage", slog.String("error", err.Error()))
	}

	if runErr != nil {
		log.Error("session ended with an error", slog.String("error", runErr.Error()))
		os.Exit(1)
	}

	log.Info("session finished")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
