package sync

import (
	"context"
	"time"

	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

//go:generate mockgen -source=sync.go -destination=mocks/mock_sync.go -package=mocks

// RemoteSource is the remote legislative data API as the synchronizers
// consume it. Listing calls return one page and a continuation signal;
// Throttle inserts the inter-page delay against the shared rate budget.
type RemoteSource interface {
	ListMembers(ctx context.Context, offset int) ([]*member.Member, bool, error)
	GetMember(ctx context.Context, personID string) (*member.Member, error)
	ListVotes(ctx context.Context, parliament, session string, offset int) ([]*vote.Vote, bool, int, error)
	ListVoteCasts(ctx context.Context, parliament, session string, divisionNumber int) ([]*vote.Cast, error)
	ListBills(ctx context.Context, parliament, session string, page int) ([]*bill.Bill, bool, error)
	ListMemberInterventions(ctx context.Context, parliament, session, personID string, offset int) ([]*intervention.Intervention, bool, error)
	ListMemberCommitteeInterventions(ctx context.Context, parliament, session, personID string, offset int) ([]*intervention.CommitteeIntervention, bool, error)
	Throttle(ctx context.Context) error
}

// Result summarizes one synchronizer pass.
type Result struct {
	Fetched  int `json:"fetched"`
	Upserted int `json:"upserted"`
	Skipped  int `json:"skipped"`
}

// Synchronizer is one entity's incremental sync pass. A returned error
// means the pass was fatal and the entity's watermark did not advance.
type Synchronizer interface {
	Entity() syncstate.Entity
	Sync(ctx context.Context) (Result, error)
}

// watermark wraps cursor reads and writes for one entity. A forced
// backfill ignores the stored cursor so every record is a candidate.
type watermark struct {
	cursors syncstate.CursorRepository
	entity  syncstate.Entity
	force   bool
}

// since returns the adjusted filter boundary, or nil for a full backfill.
func (w watermark) since(ctx context.Context) (*time.Time, error) {
	if w.force {
		return nil, nil
	}
	cursor, err := w.cursors.Get(ctx, w.entity)
	if err != nil {
		return nil, err
	}
	return syncstate.AdjustedSince(cursor), nil
}

// advance records the new cursor. Called only after a fully successful
// page walk.
func (w watermark) advance(ctx context.Context) error {
	return w.cursors.Set(ctx, w.entity, time.Now().UTC())
}

// changedSince reports whether a record's source timestamps place it
// strictly after the boundary. Records without timestamps always qualify.
func changedSince(since, updated, created *time.Time) bool {
	if since == nil {
		return true
	}
	ts := updated
	if ts == nil {
		ts = created
	}
	if ts == nil {
		return true
	}
	return ts.After(*since)
}
