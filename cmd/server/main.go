package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/commons-pulse/commons-pulse/internal/api/http"
	"github.com/commons-pulse/commons-pulse/internal/application/analytics"
	"github.com/commons-pulse/commons-pulse/internal/config"
	"github.com/commons-pulse/commons-pulse/internal/infrastructure/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// repositories
	memberRepo := postgres.NewMemberRepository(pool)
	voteRepo := postgres.NewVoteRepository(pool)
	castRepo := postgres.NewCastRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	interventionRepo := postgres.NewInterventionRepository(pool)
	committeeRepo := postgres.NewCommitteeInterventionRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	runRepo := postgres.NewRunRepository(pool)
	deadLetterRepo := postgres.NewDeadLetterRepository(pool)

	// services
	analyticsSvc := analytics.NewService(memberRepo, voteRepo, castRepo, statsRepo, logger)

	apiServer := httpapi.NewServer(
		analyticsSvc,
		statsRepo,
		memberRepo,
		billRepo,
		interventionRepo,
		committeeRepo,
		runRepo,
		deadLetterRepo,
		cfg.Parliament,
		cfg.Session,
		logger,
	)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
