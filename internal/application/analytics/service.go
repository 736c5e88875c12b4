package analytics

import (
	"context"
	stdsync "sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// ComputeResult summarizes one finished compute pass.
type ComputeResult struct {
	Parliament      string    `json:"parliament"`
	Session         string    `json:"session"`
	TotalVotes      int       `json:"total_votes"`
	VoteRecords     int       `json:"vote_records"`
	MembersComputed int       `json:"members_computed"`
	ComputedAt      time.Time `json:"computed_at"`
}

// Service derives the per-session analytics snapshot: vote records, vote
// stats and ranked member stats, rebuilt wholesale from the synchronized
// tables. Concurrent compute requests for the same session serialize on a
// per-session lock; distinct sessions compute freely in parallel.
type Service struct {
	members member.Repository
	votes   vote.Repository
	casts   vote.CastRepository
	stats   stats.Repository
	logger  zerolog.Logger

	mu    stdsync.Mutex
	locks map[string]*stdsync.Mutex
}

func NewService(members member.Repository, votes vote.Repository, casts vote.CastRepository, statsRepo stats.Repository, logger zerolog.Logger) *Service {
	return &Service{
		members: members,
		votes:   votes,
		casts:   casts,
		stats:   statsRepo,
		logger:  logger.With().Str("service", "analytics").Logger(),
		locks:   map[string]*stdsync.Mutex{},
	}
}

func (s *Service) sessionLock(parliament, session string) *stdsync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := parliament + "-" + session
	lock, ok := s.locks[key]
	if !ok {
		lock = &stdsync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// ComputeSession rebuilds the session's derived collections from the
// synchronized members, votes and casts. The whole snapshot is swapped in
// one transaction, so readers never see a partial generation.
func (s *Service) ComputeSession(ctx context.Context, parliament, session string) (*ComputeResult, error) {
	lock := s.sessionLock(parliament, session)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now().UTC()
	s.logger.Info().Str("parliament", parliament).Str("session", session).Msg("compute started")

	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := s.votes.ListBySession(ctx, parliament, session)
	if err != nil {
		return nil, err
	}
	casts, err := s.casts.ListBySession(ctx, parliament, session)
	if err != nil {
		return nil, err
	}
	castsByDivision := make(map[int][]*vote.Cast)
	for _, c := range casts {
		castsByDivision[c.DivisionNumber] = append(castsByDivision[c.DivisionNumber], c)
	}

	profiles := BuildProfiles(members, started)
	records, voteStats := BuildTallies(votes, castsByDivision, profiles)
	memberStats := BuildMemberStats(parliament, session, records, profiles, started)

	if err := s.stats.ReplaceSession(ctx, parliament, session, records, voteStats, memberStats); err != nil {
		return nil, err
	}
	if err := s.stats.RecordSessionCompute(ctx, parliament, session, len(votes), len(memberStats)); err != nil {
		return nil, err
	}

	res := &ComputeResult{
		Parliament:      parliament,
		Session:         session,
		TotalVotes:      len(votes),
		VoteRecords:     len(records),
		MembersComputed: len(memberStats),
		ComputedAt:      started,
	}
	s.logger.Info().
		Str("parliament", parliament).
		Str("session", session).
		Int("total_votes", res.TotalVotes).
		Int("vote_records", res.VoteRecords).
		Int("members_computed", res.MembersComputed).
		Dur("elapsed", time.Since(started)).
		Msg("compute finished")
	return res, nil
}

// CohortComparison positions one member against a cohort average.
type CohortComparison struct {
	Name             string  `json:"name"`
	Size             int     `json:"size"`
	AvgPresenceRate  float64 `json:"avg_presence_rate"`
	AvgActivityIndex float64 `json:"avg_activity_index_score"`
	AbovePresence    bool    `json:"member_above_presence"`
	AboveActivity    bool    `json:"member_above_activity"`
}

// MemberDetail is one member's snapshot joined with party and province
// cohort comparisons.
type MemberDetail struct {
	Member   *stats.MemberStat `json:"member"`
	Party    CohortComparison  `json:"party"`
	Province CohortComparison  `json:"province"`
}

// MemberDetail loads a member's stats and compares them against the
// averages of the member's party and province cohorts. Returns nil when
// the member has no computed snapshot for the session.
func (s *Service) MemberDetail(ctx context.Context, parliament, session, personID string) (*MemberDetail, error) {
	m, err := s.stats.GetMemberStat(ctx, parliament, session, personID)
	if err != nil || m == nil {
		return nil, err
	}

	partyCohort, err := s.stats.ListMemberStats(ctx, parliament, session, stats.MemberStatFilter{Party: m.Party})
	if err != nil {
		return nil, err
	}
	provinceCohort, err := s.stats.ListMemberStats(ctx, parliament, session, stats.MemberStatFilter{Province: m.Province})
	if err != nil {
		return nil, err
	}

	return &MemberDetail{
		Member:   m,
		Party:    compareCohort(m, m.Party, partyCohort),
		Province: compareCohort(m, m.Province, provinceCohort),
	}, nil
}

func compareCohort(m *stats.MemberStat, name string, cohort []*stats.MemberStat) CohortComparison {
	c := CohortComparison{Name: name, Size: len(cohort)}
	if len(cohort) == 0 {
		return c
	}
	var presence, activity float64
	for _, cm := range cohort {
		presence += cm.PresenceRate
		activity += cm.ActivityIndexScore
	}
	c.AvgPresenceRate = round1(presence / float64(len(cohort)))
	c.AvgActivityIndex = round2(activity / float64(len(cohort)))
	c.AbovePresence = m.PresenceRate >= c.AvgPresenceRate
	c.AboveActivity = m.ActivityIndexScore >= c.AvgActivityIndex
	return c
}
