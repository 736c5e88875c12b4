package sync

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

// MemberSynchronizer keeps the member roster current. House members get a
// second detail fetch for roles, committees and election history; when the
// detail lookup fails its bounded retries, the listing record is stored
// as-is rather than dropped.
type MemberSynchronizer struct {
	source      RemoteSource
	repo        member.Repository
	deadLetters syncstate.DeadLetterRepository
	mark        watermark
	logger      zerolog.Logger
}

func NewMemberSynchronizer(source RemoteSource, repo member.Repository, cursors syncstate.CursorRepository, deadLetters syncstate.DeadLetterRepository, force bool, logger zerolog.Logger) *MemberSynchronizer {
	return &MemberSynchronizer{
		source:      source,
		repo:        repo,
		deadLetters: deadLetters,
		mark:        watermark{cursors: cursors, entity: syncstate.EntityMembers, force: force},
		logger:      logger.With().Str("sync", "members").Logger(),
	}
}

func (s *MemberSynchronizer) Entity() syncstate.Entity { return syncstate.EntityMembers }

func (s *MemberSynchronizer) Sync(ctx context.Context) (Result, error) {
	var res Result
	since, err := s.mark.since(ctx)
	if err != nil {
		return res, err
	}

	offset := 0
	for {
		page, hasNext, err := s.source.ListMembers(ctx, offset)
		if err != nil {
			return res, err
		}
		if len(page) == 0 {
			break
		}
		res.Fetched += len(page)

		for _, m := range page {
			// A House member the source never timestamped has not been
			// backfilled with detail data yet; it always qualifies.
			needsBackfill := m.SourceCreatedAt == nil && !m.IsSenate()
			if !needsBackfill && !changedSince(since, m.SourceUpdatedAt, m.SourceCreatedAt) {
				res.Skipped++
				continue
			}

			full := m
			if !m.IsSenate() {
				detail, err := s.source.GetMember(ctx, m.PersonID)
				if err != nil {
					if ctx.Err() != nil {
						return res, ctx.Err()
					}
					s.logger.Warn().Err(err).Str("person_id", m.PersonID).Msg("member detail unavailable, storing listing record")
				} else {
					full = detail
				}
			}

			if err := s.repo.Upsert(ctx, full); err != nil {
				dl := &syncstate.DeadLetter{
					Entity:     syncstate.EntityMembers,
					NaturalKey: map[string]any{"person_id": full.PersonID},
					Error:      err.Error(),
				}
				if dlErr := s.deadLetters.Record(ctx, dl); dlErr != nil {
					return res, dlErr
				}
				s.logger.Error().Err(err).Str("person_id", full.PersonID).Msg("member upsert failed, dead-lettered")
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

	if err := s.mark.advance(ctx); err != nil {
		return res, err
	}
	s.logger.Info().Int("fetched", res.Fetched).Int("upserted", res.Upserted).Int("skipped", res.Skipped).Msg("members sync complete")
	return res, nil
}
