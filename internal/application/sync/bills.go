package sync

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

// BillSynchronizer keeps a session's bill metadata current. The bills
// endpoint pages by number rather than offset.
type BillSynchronizer struct {
	source      RemoteSource
	repo        bill.Repository
	deadLetters syncstate.DeadLetterRepository
	mark        watermark
	parliament  string
	session     string
	logger      zerolog.Logger
}

func NewBillSynchronizer(source RemoteSource, repo bill.Repository, cursors syncstate.CursorRepository, deadLetters syncstate.DeadLetterRepository, parliament, session string, force bool, logger zerolog.Logger) *BillSynchronizer {
	return &BillSynchronizer{
		source:      source,
		repo:        repo,
		deadLetters: deadLetters,
		mark:        watermark{cursors: cursors, entity: syncstate.EntityBills, force: force},
		parliament:  parliament,
		session:     session,
		logger:      logger.With().Str("sync", "bills").Logger(),
	}
}

func (s *BillSynchronizer) Entity() syncstate.Entity { return syncstate.EntityBills }

func (s *BillSynchronizer) Sync(ctx context.Context) (Result, error) {
	var res Result
	since, err := s.mark.since(ctx)
	if err != nil {
		return res, err
	}

	page := 1
	for {
		bills, hasNext, err := s.source.ListBills(ctx, s.parliament, s.session, page)
		if err != nil {
			return res, err
		}
		if len(bills) == 0 {
			break
		}
		res.Fetched += len(bills)

		for _, b := range bills {
			if !changedSince(since, b.SourceUpdatedAt, b.SourceCreatedAt) {
				res.Skipped++
				continue
			}
			if err := s.repo.Upsert(ctx, b); err != nil {
				dl := &syncstate.DeadLetter{
					Entity: syncstate.EntityBills,
					NaturalKey: map[string]any{
						"parliament": b.Parliament,
						"session":    b.Session,
						"number":     b.Number,
					},
					Error: err.Error(),
				}
				if dlErr := s.deadLetters.Record(ctx, dl); dlErr != nil {
					return res, dlErr
				}
				s.logger.Error().Err(err).Str("number", b.Number).Msg("bill upsert failed, dead-lettered")
				continue
			}
			res.Upserted++
		}

		if !hasNext {
			break
		}
		page++
		if err := s.source.Throttle(ctx); err != nil {
			return res, err
		}
	}

	if err := s.mark.advance(ctx); err != nil {
		return res, err
	}
	s.logger.Info().Int("fetched", res.Fetched).Int("upserted", res.Upserted).Msg("bills sync complete")
	return res, nil
}
