package analytics

import (
	"time"

	"github.com/commons-pulse/commons-pulse/internal/domain/member"
)

// monthLength is the average Gregorian month used for tenure math.
const monthLength = time.Duration(30.44 * 24 * float64(time.Hour))

// Profile is a member's resolved compute-time metadata: chamber
// classification, tenure, election record and the source-provided activity
// counters. Profiles are derived fresh on every compute pass.
type Profile struct {
	PersonID                string
	Name                    string
	Party                   string
	CaucusShortName         string
	Chamber                 string
	Province                string
	Constituency            string
	PoliticalAlignmentScore *float64
	IsSenate                bool

	TenureMonths int
	YearsInHouse int
	ElectionsWon int

	CommitteesCount   int
	AssociationsCount int

	// Counters pre-aggregated by the source; trusted as-is.
	InterventionsCount          int
	CommitteeInterventionsCount int
	BillsSponsored              int
}

// BuildProfile resolves one member's profile at the given instant.
// Senators get "Senate" for caucus, province and constituency so cohort
// groupings never mix chambers.
func BuildProfile(m *member.Member, now time.Time) *Profile {
	p := &Profile{
		PersonID:                m.PersonID,
		Name:                    m.FullName,
		Party:                   m.Party,
		CaucusShortName:         m.CaucusShortName,
		Chamber:                 m.Chamber,
		Province:                m.Province,
		Constituency:            m.Constituency,
		PoliticalAlignmentScore: m.PoliticalAlignmentScore,
		IsSenate:                m.IsSenate(),

		InterventionsCount:          m.DebateInterventionCount,
		CommitteeInterventionsCount: m.CommitteeInterventionCount,
		BillsSponsored:              m.BillsSponsored,
	}
	if p.IsSenate {
		p.CaucusShortName = "Senate"
		p.Province = "Senate"
		p.Constituency = "Senate"
	}

	p.TenureMonths = tenureMonths(m, now)
	p.YearsInHouse = p.TenureMonths / 12
	p.ElectionsWon = electionsWon(m)
	p.CommitteesCount = distinctCommittees(m)
	p.AssociationsCount = distinctAssociations(m)
	return p
}

// BuildProfiles resolves the whole roster, keyed by person_id.
func BuildProfiles(members []*member.Member, now time.Time) map[string]*Profile {
	profiles := make(map[string]*Profile, len(members))
	for _, m := range members {
		profiles[m.PersonID] = BuildProfile(m, now)
	}
	return profiles
}

// tenureMonths counts whole average-length months since the member's
// earliest winning election. Appointed members (no election history) fall
// back to their from-date.
func tenureMonths(m *member.Member, now time.Time) int {
	var start *time.Time
	for _, e := range m.ElectionHistory {
		if !e.Won() || e.Date == nil {
			continue
		}
		if start == nil || e.Date.Before(*start) {
			start = e.Date
		}
	}
	if start == nil {
		start = m.FromDatetime
	}
	if start == nil || !start.Before(now) {
		return 0
	}
	return int(now.Sub(*start) / monthLength)
}

func electionsWon(m *member.Member) int {
	won := 0
	for _, e := range m.ElectionHistory {
		if e.Won() {
			won++
		}
	}
	return won
}

func distinctCommittees(m *member.Member) int {
	seen := make(map[string]struct{}, len(m.Committees))
	for _, c := range m.Committees {
		if c.CommitteeName == "" {
			continue
		}
		seen[c.CommitteeName] = struct{}{}
	}
	return len(seen)
}

func distinctAssociations(m *member.Member) int {
	seen := make(map[string]struct{}, len(m.Associations))
	for _, a := range m.Associations {
		if a.Organization == "" {
			continue
		}
		seen[a.Organization] = struct{}{}
	}
	return len(seen)
}
