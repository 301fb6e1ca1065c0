package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"flourshop/internal/config"
	"flourshop/internal/db"
	"flourshop/internal/logger"
	"flourshop/internal/router"
	"flourshop/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.InitLogger("production")
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.InitLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("Starting flour shop API")

	database, err := db.InitDB(cfg.DBUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatal().Err(err).Msg("Migrations failed")
	}

	stores := store.New(database)
	if err := db.Seed(stores, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	r, err := router.SetupRouter(cfg, stores, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Router setup failed")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
