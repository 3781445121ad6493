// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "ledger-service/internal"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ledger := app.NewApplication()
	if err := ledger.Initialize(ctx); err != nil {
		ledger.Logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + ledger.Config.ServerPort,
		Handler:           ledger.HTTPHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      40 * time.Second, // above the router's request timeout
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		ledger.Logger.Info("Starting HTTP server", "port", ledger.Config.ServerPort, "storage", ledger.Config.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case err := <-serverErr:
		ledger.Logger.Error("HTTP server stopped unexpectedly", "error", err)
		exitCode = 1
	case <-ctx.Done():
		ledger.Logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		ledger.Logger.Error("HTTP server shutdown failed", "error", err)
		exitCode = 1
	}
	if err := ledger.Shutdown(shutdownCtx); err != nil {
		ledger.Logger.Error("Application shutdown failed", "error", err)
		exitCode = 1
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	ledger.Logger.Info("Application stopped.")
}
