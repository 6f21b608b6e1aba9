package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThePyromage/dungeonGenerator/internal/config"
	"github.com/ThePyromage/dungeonGenerator/internal/handlers"
	"github.com/ThePyromage/dungeonGenerator/internal/services"
	"github.com/ThePyromage/dungeonGenerator/internal/ws"
)

func main() {
	// DUNGEON_CONFIG optionally names a JSON config file
	cfg, err := config.Load(os.Getenv("DUNGEON_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	svc := services.NewDungeonService(cfg)
	hub := ws.NewHub()

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(svc, hub),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Dungeon service listening on %s (max batch %d, %d workers)", cfg.ServerAddr, cfg.MaxBatch, cfg.Workers)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
