package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/commons-pulse/commons-pulse/internal/application/analytics"
	appsync "github.com/commons-pulse/commons-pulse/internal/application/sync"
	"github.com/commons-pulse/commons-pulse/internal/config"
	"github.com/commons-pulse/commons-pulse/internal/infrastructure/openparl"
	"github.com/commons-pulse/commons-pulse/internal/infrastructure/postgres"
)

var rootCmd = &cobra.Command{
	Use:   "etl",
	Short: "Legislative data pipeline",
	Long: `Synchronizes members, votes, vote casts, bills and interventions
from the remote source and computes per-session analytics.`,
	SilenceUsage: true,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one full synchronization pass",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runSync(cmd.Context())
	},
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute analytics for the configured session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runCompute(cmd.Context())
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run sync and compute on a cron schedule",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runSchedule(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(syncCmd, computeCmd, scheduleCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app wires the pipeline once per command invocation.
type app struct {
	cfg          *config.Config
	pool         *pgxpool.Pool
	orchestrator *appsync.Orchestrator
	analytics    *analytics.Service
	logger       zerolog.Logger
}

func newApp(ctx context.Context) (*app, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	memberRepo := postgres.NewMemberRepository(pool)
	voteRepo := postgres.NewVoteRepository(pool)
	castRepo := postgres.NewCastRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	interventionRepo := postgres.NewInterventionRepository(pool)
	committeeRepo := postgres.NewCommitteeInterventionRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	cursorRepo := postgres.NewCursorRepository(pool)
	runRepo := postgres.NewRunRepository(pool)
	deadLetterRepo := postgres.NewDeadLetterRepository(pool)

	source := openparl.NewClient(openparl.Config{
		BaseURL:        cfg.APIBaseURL,
		RequestsPerSec: cfg.RequestsPerSec,
		PageSize:       cfg.PageSize,
		PageDelay:      cfg.PageDelay,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)

	members := appsync.NewMemberSynchronizer(source, memberRepo, cursorRepo, deadLetterRepo, cfg.ForceBackfillFor("members"), logger)
	votes := appsync.NewVoteSynchronizer(source, voteRepo, statsRepo, cursorRepo, deadLetterRepo, cfg.Parliament, cfg.Session, cfg.ForceBackfillFor("votes"), logger)
	casts := appsync.NewCastSynchronizer(source, voteRepo, castRepo, cursorRepo, deadLetterRepo, cfg.Parliament, cfg.Session, cfg.ForceBackfillFor("vote_casts"), logger)
	bills := appsync.NewBillSynchronizer(source, billRepo, cursorRepo, deadLetterRepo, cfg.Parliament, cfg.Session, cfg.ForceBackfillFor("bills"), logger)
	floor := appsync.NewInterventionSynchronizer(source, memberRepo, interventionRepo, cursorRepo, deadLetterRepo, cfg.Parliament, cfg.Session, cfg.NestedWorkers, cfg.ForceBackfillFor("interventions"), logger)
	committee := appsync.NewCommitteeInterventionSynchronizer(source, memberRepo, committeeRepo, cursorRepo, deadLetterRepo, cfg.Parliament, cfg.Session, cfg.NestedWorkers, cfg.ForceBackfillFor("committee_interventions"), logger)

	return &app{
		cfg:          cfg,
		pool:         pool,
		orchestrator: appsync.NewOrchestrator(runRepo, members, votes, casts, bills, floor, committee, cfg.Parliament, cfg.Session, logger),
		analytics:    analytics.NewService(memberRepo, voteRepo, castRepo, statsRepo, logger),
		logger:       logger,
	}, nil
}

func (a *app) Close() {
	a.pool.Close()
}

func (a *app) runSync(ctx context.Context) error {
	run, err := a.orchestrator.Run(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	a.logger.Info().Str("run_id", run.RunID.String()).Msg("sync pass done")
	return nil
}

func (a *app) runCompute(ctx context.Context) error {
	res, err := a.analytics.ComputeSession(ctx, a.cfg.Parliament, a.cfg.Session)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	a.logger.Info().Int("total_votes", res.TotalVotes).Int("members_computed", res.MembersComputed).Msg("compute pass done")
	return nil
}

// runSchedule runs sync then compute on the configured cron spec until the
// process receives a termination signal.
func (a *app) runSchedule(ctx context.Context) error {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(a.cfg.CronSpec, func() {
		if err := a.runSync(ctx); err != nil {
			a.logger.Error().Err(err).Msg("scheduled sync failed")
			return
		}
		if err := a.runCompute(ctx); err != nil {
			a.logger.Error().Err(err).Msg("scheduled compute failed")
		}
	})
	if err != nil {
		return fmt.Errorf("cron spec %q: %w", a.cfg.CronSpec, err)
	}

	a.logger.Info().Str("cron", a.cfg.CronSpec).Msg("scheduler started")
	scheduler.Start()
	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	a.logger.Info().Msg("scheduler stopped")
	return nil
}
