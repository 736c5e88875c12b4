package sync

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// VoteSynchronizer keeps a session's division metadata current. Each
// upsert resets the division's casts-complete flag, so the cast
// synchronizer revisits changed divisions.
type VoteSynchronizer struct {
	source      RemoteSource
	repo        vote.Repository
	sessions    stats.Repository
	deadLetters syncstate.DeadLetterRepository
	mark        watermark
	parliament  string
	session     string
	logger      zerolog.Logger
}

func NewVoteSynchronizer(source RemoteSource, repo vote.Repository, sessions stats.Repository, cursors syncstate.CursorRepository, deadLetters syncstate.DeadLetterRepository, parliament, session string, force bool, logger zerolog.Logger) *VoteSynchronizer {
	return &VoteSynchronizer{
		source:      source,
		repo:        repo,
		sessions:    sessions,
		deadLetters: deadLetters,
		mark:        watermark{cursors: cursors, entity: syncstate.EntityVotes, force: force},
		parliament:  parliament,
		session:     session,
		logger:      logger.With().Str("sync", "votes").Logger(),
	}
}

func (s *VoteSynchronizer) Entity() syncstate.Entity { return syncstate.EntityVotes }

func (s *VoteSynchronizer) Sync(ctx context.Context) (Result, error) {
	var res Result
	since, err := s.mark.since(ctx)
	if err != nil {
		return res, err
	}

	offset := 0
	total := 0
	for {
		page, hasNext, pageTotal, err := s.source.ListVotes(ctx, s.parliament, s.session, offset)
		if err != nil {
			return res, err
		}
		if pageTotal > 0 {
			total = pageTotal
		}
		if len(page) == 0 {
			break
		}
		res.Fetched += len(page)

		for _, v := range page {
			if !changedSince(since, v.SourceUpdatedAt, v.SourceCreatedAt) {
				res.Skipped++
				continue
			}
			if err := s.repo.Upsert(ctx, v); err != nil {
				dl := &syncstate.DeadLetter{
					Entity: syncstate.EntityVotes,
					NaturalKey: map[string]any{
						"parliament":      v.Parliament,
						"session":         v.Session,
						"division_number": strconv.Itoa(v.DivisionNumber),
					},
					Error: err.Error(),
				}
				if dlErr := s.deadLetters.Record(ctx, dl); dlErr != nil {
					return res, dlErr
				}
				s.logger.Error().Err(err).Int("division", v.DivisionNumber).Msg("vote upsert failed, dead-lettered")
				continue
			}
			res.Upserted++
		}

		offset += len(page)
		if !hasNext {
			break
		}
		if err := s.source.Throttle(ctx); err != nil {
			return res, err
		}
	}

	if total == 0 {
		total = res.Fetched
	}
	if err := s.sessions.TouchSessionSync(ctx, s.parliament, s.session, total); err != nil {
		return res, err
	}
	if err := s.mark.advance(ctx); err != nil {
		return res, err
	}
	s.logger.Info().Int("fetched", res.Fetched).Int("upserted", res.Upserted).Int("total", total).Msg("votes sync complete")
	return res, nil
}
