package bill

import "time"

// Bill is a piece of legislation, keyed by (number, parliament, session).
type Bill struct {
	ID              int64      `json:"-"`
	Number          string     `json:"number"`
	Parliament      string     `json:"parliament"`
	Session         string     `json:"session"`
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	SponsorPersonID string     `json:"sponsor_person_id"`
	SponsorName     string     `json:"sponsor_name"`
	IntroducedDate  *time.Time `json:"introduced_date,omitempty"`
	SourceCreatedAt *time.Time `json:"source_created_at,omitempty"`
	SourceUpdatedAt *time.Time `json:"source_updated_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
