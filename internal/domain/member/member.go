package member

import (
	"strings"
	"time"
)

// Member is a legislator synchronized from the remote source. Members are
// upserted by person_id and never deleted.
type Member struct {
	ID                         int64             `json:"-"`
	PersonID                   string            `json:"person_id"`
	FullName                   string            `json:"full_name"`
	Chamber                    string            `json:"chamber"`
	Party                      string            `json:"party"`
	CaucusShortName            string            `json:"caucus_short_name"`
	Province                   string            `json:"province"`
	Constituency               string            `json:"constituency"`
	FromDatetime               *time.Time        `json:"from_datetime,omitempty"`
	PoliticalAlignmentScore    *float64          `json:"political_alignment_score,omitempty"`
	DebateInterventionCount    int               `json:"debate_intervention_count"`
	CommitteeInterventionCount int               `json:"committee_intervention_count"`
	BillsSponsored             int               `json:"bills_sponsored"`
	ElectionHistory            []ElectionEvent   `json:"election_history,omitempty"`
	Committees                 []CommitteeRole   `json:"committees,omitempty"`
	Associations               []AssociationRole `json:"associations,omitempty"`
	SourceCreatedAt            *time.Time        `json:"source_created_at,omitempty"`
	SourceUpdatedAt            *time.Time        `json:"source_updated_at,omitempty"`
	CreatedAt                  time.Time         `json:"created_at"`
	UpdatedAt                  time.Time         `json:"updated_at"`
}

// ElectionEvent is one entry of a member's election history.
type ElectionEvent struct {
	Date         *time.Time `json:"election_date"`
	ResultType   string     `json:"election_result_type"`
	Constituency string     `json:"constituency"`
}

// CommitteeRole is a current committee membership.
type CommitteeRole struct {
	CommitteeName string `json:"committee_name"`
	Role          string `json:"role"`
}

// AssociationRole is a parliamentary association membership.
type AssociationRole struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
}

// IsSenate reports whether the member sits in the Senate. Anything other
// than an explicit "senate" chamber counts as House, including an empty
// chamber; downstream vote analytics relies on this default.
func (m *Member) IsSenate() bool {
	return strings.EqualFold(strings.TrimSpace(m.Chamber), "senate")
}

// Won reports whether an election event put the member in a seat.
func (e ElectionEvent) Won() bool {
	result := strings.ToLower(e.ResultType)
	return strings.Contains(result, "elected") || strings.Contains(result, "acclaimed")
}
