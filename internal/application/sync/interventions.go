package sync

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

// InterventionSynchronizer fetches floor speeches per House member. Each
// member gets an independent paginated sub-fetch; items reporting session
// coordinates other than the target are discarded, not stored. Members are
// walked by a bounded worker pool drawing on the shared rate budget.
type InterventionSynchronizer struct {
	source      RemoteSource
	members     member.Repository
	repo        intervention.Repository
	deadLetters syncstate.DeadLetterRepository
	mark        watermark
	parliament  string
	session     string
	workers     int
	logger      zerolog.Logger
}

func NewInterventionSynchronizer(source RemoteSource, members member.Repository, repo intervention.Repository, cursors syncstate.CursorRepository, deadLetters syncstate.DeadLetterRepository, parliament, session string, workers int, force bool, logger zerolog.Logger) *InterventionSynchronizer {
	if workers < 1 {
		workers = 1
	}
	return &InterventionSynchronizer{
		source:      source,
		members:     members,
		repo:        repo,
		deadLetters: deadLetters,
		mark:        watermark{cursors: cursors, entity: syncstate.EntityInterventions, force: force},
		parliament:  parliament,
		session:     session,
		workers:     workers,
		logger:      logger.With().Str("sync", "interventions").Logger(),
	}
}

func (s *InterventionSynchronizer) Entity() syncstate.Entity { return syncstate.EntityInterventions }

func (s *InterventionSynchronizer) Sync(ctx context.Context) (Result, error) {
	var res Result
	since, err := s.mark.since(ctx)
	if err != nil {
		return res, err
	}

	roster, err := houseRoster(ctx, s.members)
	if err != nil {
		return res, err
	}

	var fetched, upserted, skipped atomic.Int64
	pool := pond.NewPool(s.workers)
	defer pool.StopAndWait()
	group := pool.NewGroupContext(ctx)

	for _, m := range roster {
		personID := m.PersonID
		group.SubmitErr(func() error {
			return s.syncMember(ctx, personID, since, &fetched, &upserted, &skipped)
		})
	}
	if err := group.Wait(); err != nil {
		return res, err
	}

	res.Fetched = int(fetched.Load())
	res.Upserted = int(upserted.Load())
	res.Skipped = int(skipped.Load())

	if err := s.mark.advance(ctx); err != nil {
		return res, err
	}
	s.logger.Info().Int("members", len(roster)).Int("fetched", res.Fetched).Int("upserted", res.Upserted).Msg("interventions sync complete")
	return res, nil
}

func (s *InterventionSynchronizer) syncMember(ctx context.Context, personID string, since *time.Time, fetched, upserted, skipped *atomic.Int64) error {
	offset := 0
	for {
		items, hasNext, err := s.source.ListMemberInterventions(ctx, s.parliament, s.session, personID, offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Str("person_id", personID).Msg("intervention fetch failed, abandoning member")
			return nil
		}
		if len(items) == 0 {
			return nil
		}
		fetched.Add(int64(len(items)))

		batch := make([]*intervention.Intervention, 0, len(items))
		for _, it := range items {
			if !changedSince(since, it.SourceUpdatedAt, it.SourceCreatedAt) {
				skipped.Add(1)
				continue
			}
			if it.Parliament != s.parliament || it.Session != s.session {
				skipped.Add(1)
				continue
			}
			batch = append(batch, it)
		}

		if len(batch) > 0 {
			if err := s.repo.BulkUpsert(ctx, batch); err != nil {
				dl := &syncstate.DeadLetter{
					Entity: syncstate.EntityInterventions,
					NaturalKey: map[string]any{
						"person_id": personID,
						"offset":    strconv.Itoa(offset),
					},
					Error: err.Error(),
				}
				if dlErr := s.deadLetters.Record(ctx, dl); dlErr != nil {
					return dlErr
				}
				s.logger.Error().Err(err).Str("person_id", personID).Msg("intervention batch write failed, dead-lettered")
			} else {
				upserted.Add(int64(len(batch)))
			}
		}

		offset += len(items)
		if !hasNext {
			return nil
		}
		if err := s.source.Throttle(ctx); err != nil {
			return err
		}
	}
}

// CommitteeInterventionSynchronizer is the committee-meeting counterpart
// of InterventionSynchronizer.
type CommitteeInterventionSynchronizer struct {
	source      RemoteSource
	members     member.Repository
	repo        intervention.CommitteeRepository
	deadLetters syncstate.DeadLetterRepository
	mark        watermark
	parliament  string
	session     string
	workers     int
	logger      zerolog.Logger
}

func NewCommitteeInterventionSynchronizer(source RemoteSource, members member.Repository, repo intervention.CommitteeRepository, cursors syncstate.CursorRepository, deadLetters syncstate.DeadLetterRepository, parliament, session string, workers int, force bool, logger zerolog.Logger) *CommitteeInterventionSynchronizer {
	if workers < 1 {
		workers = 1
	}
	return &CommitteeInterventionSynchronizer{
		source:      source,
		members:     members,
		repo:        repo,
		deadLetters: deadLetters,
		mark:        watermark{cursors: cursors, entity: syncstate.EntityCommitteeInterventions, force: force},
		parliament:  parliament,
		session:     session,
		workers:     workers,
		logger:      logger.With().Str("sync", "committee_interventions").Logger(),
	}
}

func (s *CommitteeInterventionSynchronizer) Entity() syncstate.Entity {
	return syncstate.EntityCommitteeInterventions
}

func (s *CommitteeInterventionSynchronizer) Sync(ctx context.Context) (Result, error) {
	var res Result
	since, err := s.mark.since(ctx)
	if err != nil {
		return res, err
	}

	roster, err := houseRoster(ctx, s.members)
	if err != nil {
		return res, err
	}

	var fetched, upserted, skipped atomic.Int64
	pool := pond.NewPool(s.workers)
	defer pool.StopAndWait()
	group := pool.NewGroupContext(ctx)

	for _, m := range roster {
		personID := m.PersonID
		group.SubmitErr(func() error {
			return s.syncMember(ctx, personID, since, &fetched, &upserted, &skipped)
		})
	}
	if err := group.Wait(); err != nil {
		return res, err
	}

	res.Fetched = int(fetched.Load())
	res.Upserted = int(upserted.Load())
	res.Skipped = int(skipped.Load())

	if err := s.mark.advance(ctx); err != nil {
		return res, err
	}
	s.logger.Info().Int("members", len(roster)).Int("fetched", res.Fetched).Int("upserted", res.Upserted).Msg("committee interventions sync complete")
	return res, nil
}

func (s *CommitteeInterventionSynchronizer) syncMember(ctx context.Context, personID string, since *time.Time, fetched, upserted, skipped *atomic.Int64) error {
	offset := 0
	for {
		items, hasNext, err := s.source.ListMemberCommitteeInterventions(ctx, s.parliament, s.session, personID, offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Str("person_id", personID).Msg("committee intervention fetch failed, abandoning member")
			return nil
		}
		if len(items) == 0 {
			return nil
		}
		fetched.Add(int64(len(items)))

		batch := make([]*intervention.CommitteeIntervention, 0, len(items))
		for _, it := range items {
			if !changedSince(since, it.SourceUpdatedAt, it.SourceCreatedAt) {
				skipped.Add(1)
				continue
			}
			if it.Parliament != s.parliament || it.Session != s.session {
				skipped.Add(1)
				continue
			}
			batch = append(batch, it)
		}

		if len(batch) > 0 {
			if err := s.repo.BulkUpsert(ctx, batch); err != nil {
				dl := &syncstate.DeadLetter{
					Entity: syncstate.EntityCommitteeInterventions,
					NaturalKey: map[string]any{
						"person_id": personID,
						"offset":    strconv.Itoa(offset),
					},
					Error: err.Error(),
				}
				if dlErr := s.deadLetters.Record(ctx, dl); dlErr != nil {
					return dlErr
				}
				s.logger.Error().Err(err).Str("person_id", personID).Msg("committee intervention batch write failed, dead-lettered")
			} else {
				upserted.Add(int64(len(batch)))
			}
		}

		offset += len(items)
		if !hasNext {
			return nil
		}
		if err := s.source.Throttle(ctx); err != nil {
			return err
		}
	}
}

// houseRoster lists the stored members that sit in the House.
func houseRoster(ctx context.Context, repo member.Repository) ([]*member.Member, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := make([]*member.Member, 0, len(all))
	for _, m := range all {
		if !m.IsSenate() {
			roster = append(roster, m)
		}
	}
	return roster, nil
}
