package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/backup"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/config"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/database"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/service"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create the state manager over the persisted store
	portfolioService := service.NewPortfolioService(store.New(db))
	systemService := service.NewSystemService(db)

	// Backup writer: debounced snapshot after mutations plus a daily cron
	backupWriter := backup.NewWriter(portfolioService, cfg.Backup.Dir, cfg.Backup.DebounceDelay)
	portfolioService.SetChangeListener(backupWriter.NotifyChanged)
	if err := backupWriter.StartCron(cfg.Backup.CronSchedule); err != nil {
		log.Fatalf("Failed to start backup schedule: %v", err)
	}
	defer backupWriter.Stop()

	// Create router
	router := api.NewRouter(systemService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	log.Println("Server exited")
}
