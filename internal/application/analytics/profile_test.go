package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/commons-pulse/commons-pulse/internal/domain/member"
)

func datePtr(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestBuildProfile_TenureFromEarliestWin(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	m := &member.Member{
		PersonID: "1",
		FullName: "Alice",
		Chamber:  "house",
		ElectionHistory: []member.ElectionEvent{
			{Date: datePtr(2021, 9, 20), ResultType: "Re-Elected"},
			{Date: datePtr(2015, 10, 19), ResultType: "Elected"},
			{Date: datePtr(2011, 5, 2), ResultType: "Defeated"},
		},
	}

	p := BuildProfile(m, now)

	// Tenure starts at the 2015 win; the 2011 defeat does not count.
	wantMonths := int(now.Sub(*datePtr(2015, 10, 19)) / monthLength)
	assert.Equal(t, wantMonths, p.TenureMonths)
	assert.Equal(t, wantMonths/12, p.YearsInHouse)
	assert.Equal(t, 2, p.ElectionsWon)
	assert.False(t, p.IsSenate)
}

func TestBuildProfile_TenureFallbackToFromDate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	from := now.Add(-100 * 24 * time.Hour)
	m := &member.Member{
		PersonID:     "2",
		FullName:     "Sen",
		Chamber:      "Senate",
		FromDatetime: &from,
	}

	p := BuildProfile(m, now)

	assert.Equal(t, int(now.Sub(from)/monthLength), p.TenureMonths)
	assert.True(t, p.IsSenate)
	assert.Equal(t, "Senate", p.CaucusShortName)
	assert.Equal(t, "Senate", p.Province)
	assert.Equal(t, "Senate", p.Constituency)
}

func TestBuildProfile_NoTenureInputs(t *testing.T) {
	p := BuildProfile(&member.Member{PersonID: "3", Chamber: "house"}, time.Now().UTC())
	assert.Equal(t, 0, p.TenureMonths)
	assert.Equal(t, 0, p.YearsInHouse)
	assert.Equal(t, 0, p.ElectionsWon)
}

func TestBuildProfile_DistinctCommitteesAndAssociations(t *testing.T) {
	m := &member.Member{
		PersonID: "4",
		Chamber:  "house",
		Committees: []member.CommitteeRole{
			{CommitteeName: "Finance"},
			{CommitteeName: "Finance"},
			{CommitteeName: "Health"},
			{CommitteeName: ""},
		},
		Associations: []member.AssociationRole{
			{Organization: "Canada-UK"},
			{Organization: "Canada-UK"},
			{Organization: ""},
		},
	}

	p := BuildProfile(m, time.Now().UTC())
	assert.Equal(t, 2, p.CommitteesCount)
	assert.Equal(t, 1, p.AssociationsCount)
}

func TestBuildProfile_SourceCounters(t *testing.T) {
	m := &member.Member{
		PersonID:                   "5",
		Chamber:                    "house",
		DebateInterventionCount:    42,
		CommitteeInterventionCount: 17,
		BillsSponsored:             3,
	}

	p := BuildProfile(m, time.Now().UTC())
	assert.Equal(t, 42, p.InterventionsCount)
	assert.Equal(t, 17, p.CommitteeInterventionsCount)
	assert.Equal(t, 3, p.BillsSponsored)
}
