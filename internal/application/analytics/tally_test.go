package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

func houseProfile(personID, name, party string) *Profile {
	return &Profile{
		PersonID: personID,
		Name:     name,
		Party:    party,
		Chamber:  "house",
	}
}

func testVote(parliament, session string, division int) *vote.Vote {
	return &vote.Vote{Parliament: parliament, Session: session, DivisionNumber: division}
}

func testCast(personID string, division int, decision vote.Decision) *vote.Cast {
	return &vote.Cast{
		Parliament:     "45",
		Session:        "1",
		DivisionNumber: division,
		PersonID:       personID,
		Decision:       decision,
	}
}

func TestBuildTallies_ParticipationAndPartition(t *testing.T) {
	profiles := map[string]*Profile{
		"A": houseProfile("A", "Alice", "Liberal"),
		"B": houseProfile("B", "Bob", "Conservative"),
		"C": houseProfile("C", "Carol", "Liberal"),
	}
	votes := []*vote.Vote{
		testVote("45", "1", 1),
		testVote("45", "1", 2),
	}
	castsByDivision := map[int][]*vote.Cast{
		1: {testCast("A", 1, vote.DecisionYea), testCast("B", 1, vote.DecisionPaired)},
		2: {testCast("A", 2, vote.DecisionNay), testCast("B", 2, vote.DecisionNay), testCast("C", 2, vote.DecisionAbstain)},
	}

	records, voteStats := BuildTallies(votes, castsByDivision, profiles)
	require.Len(t, voteStats, 2)

	div1 := voteStats[0]
	assert.Equal(t, 1, div1.PresentCount)
	assert.Equal(t, 1, div1.PairedCount)
	assert.Equal(t, 1, div1.AbsentCount)
	assert.Equal(t, 3, div1.TotalMembers)
	assert.Equal(t, 66.7, div1.ParticipationRate)

	div2 := voteStats[1]
	assert.Equal(t, 3, div2.PresentCount)
	assert.Equal(t, 0, div2.AbsentCount)
	assert.Equal(t, 100.0, div2.ParticipationRate)

	// Every roster member maps to exactly one record per division.
	perDivision := map[int]map[string]int{}
	for _, rec := range records {
		if perDivision[rec.DivisionNumber] == nil {
			perDivision[rec.DivisionNumber] = map[string]int{}
		}
		perDivision[rec.DivisionNumber][rec.PersonID]++
	}
	for division, people := range perDivision {
		require.Len(t, people, 3, "division %d", division)
		for personID, n := range people {
			assert.Equal(t, 1, n, "division %d person %s", division, personID)
		}
	}

	// C has no cast on division 1, so the roster fill-in marks it absent.
	var absent *stats.MemberVoteRecord
	for _, rec := range records {
		if rec.DivisionNumber == 1 && rec.PersonID == "C" {
			absent = rec
		}
	}
	require.NotNil(t, absent)
	assert.Equal(t, stats.StatusAbsent, absent.Status)
	assert.Equal(t, "Absent", absent.DecisionValue)
	assert.Equal(t, "Carol", absent.MemberName)
}

func TestBuildTallies_ByPartyBreakdown(t *testing.T) {
	profiles := map[string]*Profile{
		"A": houseProfile("A", "Alice", "Liberal"),
		"B": houseProfile("B", "Bob", "Liberal"),
		"C": houseProfile("C", "Carol", "Conservative"),
	}
	votes := []*vote.Vote{testVote("45", "1", 7)}
	castsByDivision := map[int][]*vote.Cast{
		7: {
			testCast("A", 7, vote.DecisionYea),
			testCast("B", 7, vote.DecisionNay),
			testCast("C", 7, vote.DecisionPaired),
		},
	}

	_, voteStats := BuildTallies(votes, castsByDivision, profiles)
	require.Len(t, voteStats, 1)

	byParty := voteStats[0].ByParty
	assert.Equal(t, stats.DecisionTally{Yea: 1, Nay: 1}, byParty["Liberal"])
	assert.Equal(t, stats.DecisionTally{Paired: 1}, byParty["Conservative"])
}

func TestBuildTallies_SenateExcludedFromDenominators(t *testing.T) {
	profiles := map[string]*Profile{
		"A": houseProfile("A", "Alice", "Liberal"),
		"B": houseProfile("B", "Bob", "Liberal"),
		"S": {PersonID: "S", Name: "Sen", Party: "Senate", Chamber: "senate", IsSenate: true},
	}
	votes := []*vote.Vote{testVote("45", "1", 1)}
	castsByDivision := map[int][]*vote.Cast{
		1: {testCast("A", 1, vote.DecisionYea)},
	}

	records, voteStats := BuildTallies(votes, castsByDivision, profiles)
	require.Len(t, voteStats, 1)

	// Two House members, one present. The senator never enters the counts.
	assert.Equal(t, 2, voteStats[0].TotalMembers)
	assert.Equal(t, 1, voteStats[0].PresentCount)
	assert.Equal(t, 1, voteStats[0].AbsentCount)
	assert.Equal(t, 50.0, voteStats[0].ParticipationRate)

	// The senator still gets a vote record for completeness.
	assert.Len(t, records, 3)
}

func TestBuildTallies_UnknownDecisionNotDoubleCounted(t *testing.T) {
	profiles := map[string]*Profile{
		"A": houseProfile("A", "Alice", "Liberal"),
	}
	votes := []*vote.Vote{testVote("45", "1", 1)}
	castsByDivision := map[int][]*vote.Cast{
		1: {testCast("A", 1, vote.DecisionUnknown)},
	}

	records, voteStats := BuildTallies(votes, castsByDivision, profiles)
	require.Len(t, records, 1)
	assert.Equal(t, stats.StatusUnknown, records[0].Status)
	assert.Equal(t, 0, voteStats[0].PresentCount)
}
