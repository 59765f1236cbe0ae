// Command server runs the task management HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9novikoff/TaskManagementSystem/internal/api"
	"github.com/9novikoff/TaskManagementSystem/internal/config"
	"github.com/9novikoff/TaskManagementSystem/internal/platform/logger"
	"github.com/9novikoff/TaskManagementSystem/internal/platform/postgres"
	"github.com/9novikoff/TaskManagementSystem/internal/service"
	"github.com/9novikoff/TaskManagementSystem/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db)
	taskStore := postgres.NewPostgresTaskStore(db)

	userService := service.NewUserService(userStore, auth.NewBcryptHasher(), jwtService, log)
	taskService := service.NewTaskService(taskStore, userStore, log)

	router := api.NewRouter(userService, taskService, jwtService)

	return serve(router, cfg.Server.Port, log)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully with a 10 second drain window.
func serve(handler http.Handler, port int, log *slog.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdownCh:
		log.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("server shutdown completed")
	return nil
}
