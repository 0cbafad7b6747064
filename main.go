package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulse-ims/api"
	"pulse-ims/config"
	"pulse-ims/core/incidents"
	"pulse-ims/core/store"
	"pulse-ims/core/utils"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config; environment-only when empty")
	flag.Parse()

	logger := utils.NewLogger()
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Errorf("load config: %v", err)
		os.Exit(1)
	}

	db, err := store.NewDB(cfg, logger)
	if err != nil {
		logger.Errorf("open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.ApplyMigrations(ctx, db, logger); err != nil {
		logger.Errorf("apply migrations: %v", err)
		os.Exit(1)
	}

	incidentsStore := store.NewIncidentsStore(db, logger)
	incidentsSvc := incidents.NewService(incidentsStore, logger)
	srv := api.NewServer(cfg, api.ServerDeps{
		IncidentsStore: incidentsStore,
		IncidentsSvc:   incidentsSvc,
	}, logger)

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Printf("listening on %s", cfg.ListenAddr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("server: %v", err)
		os.Exit(1)
	}
	logger.Printf("server stopped")
}
