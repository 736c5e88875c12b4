package stats

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// MemberStatFilter narrows and orders a member-stat listing.
type MemberStatFilter struct {
	Party    string
	Province string
	Sort     string
	Order    string
	Limit    int
}

// Repository persists the derived collections. Each compute pass fully
// replaces a session's snapshot; readers never observe a partial
// generation.
type Repository interface {
	// ReplaceSession deletes every derived row for (parliament, session) and
	// writes the new generation within one transaction.
	ReplaceSession(ctx context.Context, parliament, session string, records []*MemberVoteRecord, voteStats []*VoteStat, memberStats []*MemberStat) error

	ListMemberVoteRecords(ctx context.Context, parliament, session string) ([]*MemberVoteRecord, error)
	ListVoteStats(ctx context.Context, parliament, session string) ([]*VoteStat, error)
	ListMemberStats(ctx context.Context, parliament, session string, filter MemberStatFilter) ([]*MemberStat, error)
	GetMemberStat(ctx context.Context, parliament, session, personID string) (*MemberStat, error)

	// TouchSessionSync records the vote total observed by the vote
	// synchronizer; RecordSessionCompute stamps a finished compute pass.
	TouchSessionSync(ctx context.Context, parliament, session string, totalVotes int) error
	RecordSessionCompute(ctx context.Context, parliament, session string, totalVotes, membersComputed int) error
	GetSessionFacts(ctx context.Context, parliament, session string) (*SessionFacts, error)
}
