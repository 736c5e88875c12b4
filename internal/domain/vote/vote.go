package vote

import "time"

// Decision is a member's recorded position on a division.
type Decision string

const (
	DecisionYea     Decision = "Yea"
	DecisionNay     Decision = "Nay"
	DecisionAbstain Decision = "Abstain"
	DecisionPaired  Decision = "Paired"
	DecisionUnknown Decision = "Unknown"
)

// ParseDecision maps a raw source value onto a Decision.
func ParseDecision(raw string) Decision {
	switch raw {
	case "Yea", "Nay", "Abstain", "Paired":
		return Decision(raw)
	default:
		return DecisionUnknown
	}
}

// CountsAsPresent reports whether the decision marks the member present.
func (d Decision) CountsAsPresent() bool {
	switch d {
	case DecisionYea, DecisionNay, DecisionAbstain:
		return true
	default:
		return false
	}
}

// Vote is one recorded division, keyed by (parliament, session,
// division_number). CastsComplete is flipped by the cast synchronizer only
// after the division's cast batch has been written.
type Vote struct {
	ID              int64
	Parliament      string
	Session         string
	DivisionNumber  int
	Date            *time.Time
	Subject         string
	Result          string
	BillNumber      string
	CastsComplete   bool
	SourceCreatedAt *time.Time
	SourceUpdatedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Cast is one member's decision on one division, keyed by
// (parliament, session, division_number, person_id).
type Cast struct {
	ID             int64
	Parliament     string
	Session        string
	DivisionNumber int
	PersonID       string
	Decision       Decision
	MemberName     string
	Party          string
	Province       string
	Constituency   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
