package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
)

func TestScoreActivity_CappedComponent(t *testing.T) {
	// Cohort mean committee interventions = (9+0+0)/3 = 3. The 9-count
	// member hits the cap: min(9/3, 1) * 4/15 = 4/15, so its whole score
	// is 4/15*10 when every other component has a zero mean.
	members := []*stats.MemberStat{
		{PersonID: "A", CommitteeInterventionsCount: 9},
		{PersonID: "B", CommitteeInterventionsCount: 0},
		{PersonID: "C", CommitteeInterventionsCount: 0},
	}
	ScoreActivity(members)

	assert.InDelta(t, round2(4.0/15.0*10), members[0].ActivityIndexScore, 0.001)
	assert.Equal(t, 0.0, members[1].ActivityIndexScore)
	assert.Equal(t, 0.0, members[2].ActivityIndexScore)
}

func TestScoreActivity_Bounds(t *testing.T) {
	members := []*stats.MemberStat{
		{PersonID: "A", InterventionsCount: 500, CommitteeInterventionsCount: 300, BillsSponsored: 12, CommitteesCount: 6, AssociationsCount: 9},
		{PersonID: "B", InterventionsCount: 10, CommitteeInterventionsCount: 1, BillsSponsored: 0, CommitteesCount: 1, AssociationsCount: 0},
		{PersonID: "C"},
	}
	ScoreActivity(members)

	for _, m := range members {
		assert.GreaterOrEqual(t, m.ActivityIndexScore, 0.0, m.PersonID)
		assert.LessOrEqual(t, m.ActivityIndexScore, 10.0, m.PersonID)
	}
	// The member above every cohort mean caps every component.
	assert.Equal(t, 10.0, members[0].ActivityIndexScore)
}

func TestScoreActivity_ZeroMeanComponentContributesZero(t *testing.T) {
	members := []*stats.MemberStat{
		{PersonID: "A"},
		{PersonID: "B"},
	}
	ScoreActivity(members)
	assert.Equal(t, 0.0, members[0].ActivityIndexScore)
	assert.Equal(t, 0.0, members[1].ActivityIndexScore)
}

func TestRankMetrics_PercentileFormula(t *testing.T) {
	members := []*stats.MemberStat{
		{PersonID: "A", Party: "X", PresenceRate: 90},
		{PersonID: "B", Party: "X", PresenceRate: 80},
		{PersonID: "C", Party: "X", PresenceRate: 70},
		{PersonID: "D", Party: "X", PresenceRate: 60},
	}
	RankMetrics(members)

	n := len(members)
	for _, m := range members {
		for _, metric := range stats.RankedMetrics {
			r := m.Rankings[metric]
			want := int(math.Round(float64(n-r.Rank+1) / float64(n) * 100))
			assert.Equal(t, want, r.Percentile, "%s %s", m.PersonID, metric)
		}
	}

	presence := func(pid string) stats.Ranking {
		for _, m := range members {
			if m.PersonID == pid {
				return m.Rankings[stats.MetricPresenceRate]
			}
		}
		t.Fatalf("member %s missing", pid)
		return stats.Ranking{}
	}
	assert.Equal(t, 1, presence("A").Rank)
	assert.Equal(t, 100, presence("A").Percentile)
	assert.Equal(t, 4, presence("D").Rank)
	assert.Equal(t, 25, presence("D").Percentile)
}

func TestRankMetrics_TieBreakByPersonID(t *testing.T) {
	members := []*stats.MemberStat{
		{PersonID: "Z", Party: "X", PresenceRate: 80},
		{PersonID: "A", Party: "X", PresenceRate: 80},
		{PersonID: "M", Party: "X", PresenceRate: 80},
	}
	RankMetrics(members)

	byID := map[string]int{}
	for _, m := range members {
		byID[m.PersonID] = m.Rankings[stats.MetricPresenceRate].Rank
	}
	assert.Equal(t, 1, byID["A"])
	assert.Equal(t, 2, byID["M"])
	assert.Equal(t, 3, byID["Z"])
}

func TestRankMetrics_WithinPartyPercentiles(t *testing.T) {
	members := []*stats.MemberStat{
		{PersonID: "A", Party: "Liberal", PresenceRate: 95},
		{PersonID: "B", Party: "Liberal", PresenceRate: 55},
		{PersonID: "C", Party: "Conservative", PresenceRate: 75},
	}
	RankMetrics(members)

	find := func(pid string) stats.Ranking {
		for _, m := range members {
			if m.PersonID == pid {
				return m.Rankings[stats.MetricPresenceRate]
			}
		}
		t.Fatalf("member %s missing", pid)
		return stats.Ranking{}
	}

	// C tops its single-member party cohort despite a middling global rank.
	assert.Equal(t, 2, find("C").Rank)
	assert.Equal(t, 100, find("C").PercentileInParty)
	assert.Equal(t, 100, find("A").PercentileInParty)
	assert.Equal(t, 50, find("B").PercentileInParty)
}

func TestBuildMemberStats_AggregatesAndExcludesSenate(t *testing.T) {
	profiles := map[string]*Profile{
		"A": {PersonID: "A", Name: "Alice", CaucusShortName: "Liberal", Chamber: "house", TenureMonths: 10, InterventionsCount: 20, CommitteeInterventionsCount: 5},
		"S": {PersonID: "S", Name: "Sen", Chamber: "senate", IsSenate: true},
	}
	records := []*stats.MemberVoteRecord{
		{PersonID: "A", Status: stats.StatusPresent},
		{PersonID: "A", Status: stats.StatusPresent},
		{PersonID: "A", Status: stats.StatusPaired},
		{PersonID: "A", Status: stats.StatusAbsent},
		{PersonID: "S", Status: stats.StatusAbsent},
	}
	computedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	memberStats := BuildMemberStats("45", "1", records, profiles, computedAt)
	require.Len(t, memberStats, 1)

	m := memberStats[0]
	assert.Equal(t, "A", m.PersonID)
	assert.Equal(t, 2, m.Present)
	assert.Equal(t, 1, m.Paired)
	assert.Equal(t, 1, m.Absent)
	assert.Equal(t, 4, m.TotalVotes)
	assert.Equal(t, 75.0, m.PresenceRate)
	assert.Equal(t, "Liberal", m.Party)
	assert.Equal(t, 2.0, m.InterventionsPerMonth)
	assert.Equal(t, 0.5, m.CommitteePerMonth)
	assert.Equal(t, stats.MetricsVersion, m.MetricsVersion)
	assert.Equal(t, computedAt, m.ComputedAt)
	require.NotNil(t, m.Rankings)
	assert.Equal(t, 1, m.Rankings[stats.MetricActivityIndex].Rank)
}

func TestBuildMemberStats_PartyFallback(t *testing.T) {
	profiles := map[string]*Profile{
		"A": {PersonID: "A", Name: "Alice", Chamber: "house"},
		"B": {PersonID: "B", Name: "Bob", Party: "Green", Chamber: "house"},
	}
	records := []*stats.MemberVoteRecord{
		{PersonID: "A", Status: stats.StatusPresent},
		{PersonID: "B", Status: stats.StatusPresent},
	}

	memberStats := BuildMemberStats("45", "1", records, profiles, time.Now().UTC())
	require.Len(t, memberStats, 2)
	assert.Equal(t, "Independent", memberStats[0].Party)
	assert.Equal(t, "Green", memberStats[1].Party)
}
