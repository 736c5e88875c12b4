package sync

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// CastSynchronizer fetches individual ballots for divisions whose cast
// batch is not yet complete. A division's flag is flipped only after its
// batch has been written, so an interrupted run resumes where it stopped.
// Per-division fetch failures are logged and skipped; the division stays
// pending for the next run.
type CastSynchronizer struct {
	source      RemoteSource
	votes       vote.Repository
	casts       vote.CastRepository
	deadLetters syncstate.DeadLetterRepository
	mark        watermark
	parliament  string
	session     string
	logger      zerolog.Logger
}

func NewCastSynchronizer(source RemoteSource, votes vote.Repository, casts vote.CastRepository, cursors syncstate.CursorRepository, deadLetters syncstate.DeadLetterRepository, parliament, session string, force bool, logger zerolog.Logger) *CastSynchronizer {
	return &CastSynchronizer{
		source:      source,
		votes:       votes,
		casts:       casts,
		deadLetters: deadLetters,
		mark:        watermark{cursors: cursors, entity: syncstate.EntityVoteCasts, force: force},
		parliament:  parliament,
		session:     session,
		logger:      logger.With().Str("sync", "vote_casts").Logger(),
	}
}

func (s *CastSynchronizer) Entity() syncstate.Entity { return syncstate.EntityVoteCasts }

func (s *CastSynchronizer) Sync(ctx context.Context) (Result, error) {
	var res Result
	since, err := s.mark.since(ctx)
	if err != nil {
		return res, err
	}

	pending, err := s.votes.ListCastPending(ctx, s.parliament, s.session, since)
	if err != nil {
		return res, err
	}

	for _, v := range pending {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Fetched++

		exists, err := s.casts.HasCastsForDivision(ctx, s.parliament, s.session, v.DivisionNumber)
		if err != nil {
			return res, err
		}
		if exists {
			if err := s.votes.MarkCastsComplete(ctx, s.parliament, s.session, v.DivisionNumber); err != nil {
				return res, err
			}
			res.Skipped++
			continue
		}

		casts, err := s.source.ListVoteCasts(ctx, s.parliament, s.session, v.DivisionNumber)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			s.logger.Warn().Err(err).Int("division", v.DivisionNumber).Msg("cast fetch failed, division stays pending")
			continue
		}

		if len(casts) > 0 {
			if err := s.casts.BulkUpsert(ctx, casts); err != nil {
				dl := &syncstate.DeadLetter{
					Entity: syncstate.EntityVoteCasts,
					NaturalKey: map[string]any{
						"parliament":      s.parliament,
						"session":         s.session,
						"division_number": strconv.Itoa(v.DivisionNumber),
					},
					Error: err.Error(),
				}
				if dlErr := s.deadLetters.Record(ctx, dl); dlErr != nil {
					return res, dlErr
				}
				s.logger.Error().Err(err).Int("division", v.DivisionNumber).Msg("cast batch write failed, dead-lettered")
				continue
			}
			res.Upserted += len(casts)
		}

		if err := s.votes.MarkCastsComplete(ctx, s.parliament, s.session, v.DivisionNumber); err != nil {
			return res, err
		}

		if err := s.source.Throttle(ctx); err != nil {
			return res, err
		}
	}

	if err := s.mark.advance(ctx); err != nil {
		return res, err
	}
	s.logger.Info().Int("divisions", res.Fetched).Int("casts", res.Upserted).Msg("vote casts sync complete")
	return res, nil
}
