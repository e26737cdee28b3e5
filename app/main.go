package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"countdown/internal/auth"
	"countdown/internal/config"
	"countdown/internal/countdown"
	"countdown/internal/events"
	"countdown/internal/graceful"
	"countdown/internal/storage"
	"countdown/internal/storage/filestore"
	"countdown/internal/storage/memstore"
	"countdown/internal/storage/pgstore"
	"countdown/internal/transport/httpServer"
	"countdown/internal/transport/httpServer/handlers"
	"countdown/internal/transport/httpServer/routers"
	"countdown/internal/unsplash"
	"countdown/internal/utils/logger/handlers/slogpretty"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var Version = "0.1"

func main() {
	app := &cli.App{
		Name:    "countdown",
		Usage:   "personal event countdown dashboard",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded before reading config",
				Value: ".env",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the dashboard API server",
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	// Missing dotenv file is fine, the environment may carry everything.
	_ = godotenv.Load(c.String("env-file"))

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info(
		"starting countdown dashboard",
		slog.String("env", cfg.Env),
		slog.String("version", Version),
	)

	clock := countdown.SystemClock()
	calc := countdown.New(clock)

	shutdownOps := map[string]graceful.Operation{}

	kv, err := openStorage(log, cfg, shutdownOps)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	sessionManager := events.NewManager(log, kv, clock)

	authService := auth.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	authService.OnChange(func(user *auth.User) {
		if user == nil {
			sessionManager.Close()
			return
		}
		sessionManager.Open(context.Background(), user.UID)
	})

	imageClient := unsplash.NewClient(log, cfg.Unsplash.AccessKey)

	authHandler := handlers.NewAuthHandler(log, authService)
	eventHandler := handlers.NewEventHandler(log, sessionManager, calc)
	imageHandler := handlers.NewImageHandler(log, imageClient)

	router := routers.NewRouter(log, authHandler, eventHandler, imageHandler, authService)
	httpSrv := httpServer.NewHttpServer(log, router, cfg)

	shutdownOps["HTTP server"] = func(ctx context.Context) error {
		return httpSrv.Shutdown(ctx)
	}

	maxSecond := 15 * time.Second
	waitShutdown := graceful.GracefulShutdown(
		context.Background(),
		maxSecond,
		shutdownOps,
		log,
	)

	go httpSrv.Listen()

	<-waitShutdown
	return nil
}

func openStorage(log *slog.Logger, cfg *config.Config, shutdownOps map[string]graceful.Operation) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "file":
		return filestore.New(cfg.Storage.Dir)
	case "postgres":
		store, err := pgstore.New(log, cfg.Storage.DB)
		if err != nil {
			return nil, err
		}
		shutdownOps["Postgres storage"] = store.Shutdown
		return store, nil
	case "memory":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog(slog.LevelDebug)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = setupPrettySlog(slog.LevelInfo)
	default: // If env config is invalid, set prod settings by default due to security
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
