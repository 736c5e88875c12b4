package sync

import (
	"context"
	stdsync "sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

// Orchestrator runs one full sync pass as a small dependency DAG: the
// member roster first, then votes (with casts after), bills, and the two
// intervention walks concurrently. Any fatal synchronizer error cancels
// the remaining branches and fails the run; no partial run is reported as
// complete.
type Orchestrator struct {
	runs       syncstate.RunRepository
	members    Synchronizer
	votes      Synchronizer
	casts      Synchronizer
	bills      Synchronizer
	floor      Synchronizer
	committee  Synchronizer
	parliament string
	session    string
	logger     zerolog.Logger
}

func NewOrchestrator(runs syncstate.RunRepository, members, votes, casts, bills, floor, committee Synchronizer, parliament, session string, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		runs:       runs,
		members:    members,
		votes:      votes,
		casts:      casts,
		bills:      bills,
		floor:      floor,
		committee:  committee,
		parliament: parliament,
		session:    session,
		logger:     logger.With().Str("service", "sync").Logger(),
	}
}

// Run executes one orchestrated pass and persists its summary.
func (o *Orchestrator) Run(ctx context.Context) (*syncstate.Run, error) {
	run := syncstate.NewRun(o.parliament, o.session)
	if err := o.runs.Save(ctx, run); err != nil {
		return nil, err
	}
	o.logger.Info().Str("run_id", run.RunID.String()).Str("parliament", o.parliament).Str("session", o.session).Msg("sync run started")

	err := o.execute(ctx, run)
	if err != nil {
		run.Finish(syncstate.RunFailed, err.Error())
	} else {
		run.Finish(syncstate.RunCompleted, "")
	}
	// Persist the outcome with a fresh context: the run context may
	// already be canceled.
	saveCtx := ctx
	if ctx.Err() != nil {
		saveCtx = context.WithoutCancel(ctx)
	}
	if saveErr := o.runs.Save(saveCtx, run); saveErr != nil {
		o.logger.Error().Err(saveErr).Str("run_id", run.RunID.String()).Msg("failed to persist run summary")
	}

	if err != nil {
		o.logger.Error().Err(err).Str("run_id", run.RunID.String()).Msg("sync run failed")
		return run, err
	}
	o.logger.Info().Str("run_id", run.RunID.String()).Msg("sync run completed")
	return run, nil
}

func (o *Orchestrator) execute(ctx context.Context, run *syncstate.Run) error {
	var mu stdsync.Mutex
	record := func(s Synchronizer, res Result) {
		mu.Lock()
		defer mu.Unlock()
		run.Counts[string(s.Entity())+"_fetched"] = res.Fetched
		run.Counts[string(s.Entity())+"_upserted"] = res.Upserted
	}

	// The roster gates everything else: intervention walks iterate it and
	// vote analytics assume it exists.
	res, err := o.members.Sync(ctx)
	if err != nil {
		return err
	}
	record(o.members, res)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := o.votes.Sync(gctx)
		if err != nil {
			return err
		}
		record(o.votes, res)
		res, err = o.casts.Sync(gctx)
		if err != nil {
			return err
		}
		record(o.casts, res)
		return nil
	})
	g.Go(func() error {
		res, err := o.bills.Sync(gctx)
		if err != nil {
			return err
		}
		record(o.bills, res)
		return nil
	})
	g.Go(func() error {
		res, err := o.floor.Sync(gctx)
		if err != nil {
			return err
		}
		record(o.floor, res)
		return nil
	})
	g.Go(func() error {
		res, err := o.committee.Sync(gctx)
		if err != nil {
			return err
		}
		record(o.committee, res)
		return nil
	})

	return g.Wait()
}
