// Package main runs the Taskify landing site.
package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/emergentai/taskify/apps/website/internal/config"
	"github.com/emergentai/taskify/apps/website/internal/content"
	"github.com/emergentai/taskify/apps/website/internal/handlers"
	"github.com/emergentai/taskify/apps/website/internal/live"
	"github.com/emergentai/taskify/apps/website/internal/logger"
	"github.com/emergentai/taskify/apps/website/internal/server"
	"github.com/emergentai/taskify/apps/website/internal/version"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Supply(server.Assets{FS: staticSub}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Site modules
		content.Module,
		live.Module,
		handlers.Module,

		fx.Invoke(func(log *slog.Logger) {
			log.Info("taskify website", slog.String("version", version.Current().String()))
		}),
	).Run()
}
