package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_api/internal/config"
	"todo_api/internal/handlers"
	"todo_api/internal/logger"
	"todo_api/internal/repository"
	"todo_api/internal/repository/db"
	"todo_api/internal/server"
	"todo_api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// configs/config.yml is optional
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	pool, err := db.Open(cfg.DB.Path, db.Options{
		MaxOpenConns: cfg.DB.MaxOpenConns,
		BusyTimeout:  cfg.DB.BusyTimeout,
	})
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	initSchema(pool, cfg.DB, log)

	// wire dependencies
	repos := repository.NewRepository(pool, cfg.DB.OpTimeout)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log, handlers.WithStreamInterval(cfg.WS.Interval))

	srv := &server.Server{}
	if err := srv.Listen(cfg.Port, apiHandler.InitRoutes()); err != nil {
		log.Fatalw("error starting server", "err", err, "port", cfg.Port)
	}
	log.Infow("listening", "addr", srv.Addr().String(), "db", cfg.DB.Path)
	runHTTPServer(srv, log)

	waitForShutdown(srv, log)
}

// initSchema creates the tables before traffic is accepted. An unreachable
// database file is logged and tolerated: every /todo request will then fail
// on its own. A failing schema statement stops the process.
func initSchema(pool *sql.DB, cfg config.DB, log *logger.Logger) {
	ctx := context.Background()
	if cfg.OpTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.OpTimeout)
		defer cancel()
	}

	err := db.EnsureSchema(ctx, pool)
	switch {
	case err == nil:
		log.Infow("connected to database", "path", cfg.Path)
	case errors.Is(err, db.ErrConnect):
		log.Warnw("error connecting to database; serving without schema", "path", cfg.Path, "err", err)
	default:
		log.Fatalw("failed to create schema", "path", cfg.Path, "err", err)
	}
}

// runHTTPServer serves in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalw("error serving http", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
