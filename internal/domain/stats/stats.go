package stats

import "time"

// MetricsVersion tags every member-stat snapshot with the formula revision
// that produced it.
const MetricsVersion = "v3"

// Attendance status values for MemberVoteRecord.
const (
	StatusPresent = "present"
	StatusPaired  = "paired"
	StatusAbsent  = "absent"
	StatusUnknown = "unknown"
)

// Ranked metric names. Rank, percentile and within-party percentile are
// computed independently for each.
const (
	MetricPresenceRate           = "presence_rate"
	MetricTenureMonths           = "tenure_months"
	MetricInterventions          = "interventions_count"
	MetricCommitteeInterventions = "committee_interventions_count"
	MetricBillsSponsored         = "bills_sponsored"
	MetricActivityIndex          = "activity_index_score"
	MetricCommittees             = "committees_count"
	MetricAssociations           = "associations_count"
)

// RankedMetrics lists every metric that gets rank/percentile treatment.
var RankedMetrics = []string{
	MetricPresenceRate,
	MetricTenureMonths,
	MetricInterventions,
	MetricCommitteeInterventions,
	MetricBillsSponsored,
	MetricActivityIndex,
	MetricCommittees,
	MetricAssociations,
}

// MemberVoteRecord is one member's classified participation in one
// division. The collection for a session is rebuilt wholesale on each
// compute pass.
type MemberVoteRecord struct {
	Parliament     string     `json:"parliament"`
	Session        string     `json:"session"`
	DivisionNumber int        `json:"division_number"`
	Date           *time.Time `json:"date,omitempty"`
	PersonID       string     `json:"person_id"`
	MemberName     string     `json:"member_name"`
	Party          string     `json:"party"`
	Province       string     `json:"province"`
	Constituency   string     `json:"constituency"`
	DecisionValue  string     `json:"decision_value"`
	Status         string     `json:"status"`
}

// DecisionTally is a per-party breakdown of raw decisions on one division.
type DecisionTally struct {
	Yea     int `json:"Yea"`
	Nay     int `json:"Nay"`
	Paired  int `json:"Paired"`
	Abstain int `json:"Abstain"`
}

// VoteStat aggregates one division over the House roster. Senate members
// are excluded from every count and from the roster-size denominator.
type VoteStat struct {
	Parliament        string                   `json:"parliament"`
	Session           string                   `json:"session"`
	DivisionNumber    int                      `json:"division_number"`
	Date              *time.Time               `json:"date,omitempty"`
	PresentCount      int                      `json:"present_count"`
	PairedCount       int                      `json:"paired_count"`
	AbsentCount       int                      `json:"absent_count"`
	TotalMembers      int                      `json:"total_members"`
	ParticipationRate float64                  `json:"participation_rate"`
	ByParty           map[string]DecisionTally `json:"by_party"`
}

// Ranking holds one metric's position for one member.
type Ranking struct {
	Rank              int `json:"rank"`
	Percentile        int `json:"percentile"`
	PercentileInParty int `json:"percentile_in_party"`
}

// MemberStat is the per-member snapshot for one session: participation
// tallies, the composite activity index and per-metric rankings. Immutable
// once written; rebuilt wholesale on each compute pass.
type MemberStat struct {
	Parliament              string   `json:"parliament"`
	Session                 string   `json:"session"`
	PersonID                string   `json:"person_id"`
	Name                    string   `json:"name"`
	Party                   string   `json:"party"`
	CaucusShortName         string   `json:"caucus_short_name"`
	Chamber                 string   `json:"chamber"`
	Province                string   `json:"province"`
	Constituency            string   `json:"constituency"`
	PoliticalAlignmentScore *float64 `json:"political_alignment_score,omitempty"`

	Present      int     `json:"present"`
	Paired       int     `json:"paired"`
	Absent       int     `json:"absent"`
	TotalVotes   int     `json:"total_votes"`
	PresenceRate float64 `json:"presence_rate"`

	TenureMonths int `json:"tenure_months"`
	YearsInHouse int `json:"years_in_house"`
	ElectionsWon int `json:"elections_won"`

	CommitteesCount   int `json:"committees_count"`
	AssociationsCount int `json:"associations_count"`

	InterventionsCount          int     `json:"interventions_count"`
	InterventionsPerMonth       float64 `json:"interventions_per_month"`
	CommitteeInterventionsCount int     `json:"committee_interventions_count"`
	CommitteePerMonth           float64 `json:"committee_per_month"`
	BillsSponsored              int     `json:"bills_sponsored"`

	ActivityIndexScore float64            `json:"activity_index_score"`
	Rankings           map[string]Ranking `json:"rankings"`

	MetricsVersion string    `json:"metrics_version"`
	ComputedAt     time.Time `json:"computed_at"`
}

// MetricValue returns the member's value for a ranked metric name.
func (m *MemberStat) MetricValue(metric string) float64 {
	switch metric {
	case MetricPresenceRate:
		return m.PresenceRate
	case MetricTenureMonths:
		return float64(m.TenureMonths)
	case MetricInterventions:
		return float64(m.InterventionsCount)
	case MetricCommitteeInterventions:
		return float64(m.CommitteeInterventionsCount)
	case MetricBillsSponsored:
		return float64(m.BillsSponsored)
	case MetricActivityIndex:
		return m.ActivityIndexScore
	case MetricCommittees:
		return float64(m.CommitteesCount)
	case MetricAssociations:
		return float64(m.AssociationsCount)
	default:
		return 0
	}
}

// SessionFacts is the per-session bookkeeping row.
type SessionFacts struct {
	Parliament      string     `json:"parliament"`
	Session         string     `json:"session"`
	TotalVotes      int        `json:"total_votes"`
	MembersComputed int        `json:"total_members_computed"`
	LastSyncAt      *time.Time `json:"last_sync_at,omitempty"`
	ComputedAt      *time.Time `json:"computed_at,omitempty"`
}
