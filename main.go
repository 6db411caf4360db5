package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drove-planner/internal/api"
	"drove-planner/internal/logger"
	"drove-planner/internal/planner"
	"drove-planner/internal/routing"
	"drove-planner/internal/store"
)

var version = "dev"

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	host := flag.String("host", "127.0.0.1", "Host to bind to (use 0.0.0.0 to allow LAN/remote access)")
	flag.Parse()

	logger.Banner(version)

	history, err := store.Open()
	if err != nil {
		logger.Error("Store", fmt.Sprintf("failed to open history db: %v", err))
		os.Exit(1)
	}
	defer history.Close()

	engine := routing.NewEngine(routing.NextmvSolver{})
	srv := api.NewServer(planner.New(engine), history)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	logger.Server(addr)

	httpServer := &http.Server{Addr: addr, Handler: srv.Handler()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("Server", "Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server", fmt.Sprintf("Shutdown error: %v", err))
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
	logger.Info("Server", "Stopped")
}
