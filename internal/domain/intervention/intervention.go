package intervention

import "time"

// Intervention is a floor speech or question, fetched per member and keyed
// by (parliament, session, person_id, intervention_id).
type Intervention struct {
	ID                int64
	Parliament        string
	Session           string
	PersonID          string
	InterventionID    string
	Time              *time.Time
	Type              string
	SubjectOfBusiness string
	PublicationTitle  string
	EventID           string
	VideoURL          string
	BillMentions      []string
	HansardPage       string
	SourceCreatedAt   *time.Time
	SourceUpdatedAt   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CommitteeIntervention is a committee-meeting speech, fetched per member
// and keyed like Intervention plus committee/meeting coordinates.
type CommitteeIntervention struct {
	ID                 int64
	Parliament         string
	Session            string
	PersonID           string
	InterventionID     string
	CommitteeMeetingID string
	CommitteeCode      string
	CommitteeName      string
	MeetingNumber      int
	MeetingDate        *time.Time
	Time               *time.Time
	Type               string
	SubjectOfBusiness  string
	IsMember           bool
	AffiliationType    string
	PersonFullName     string
	PersonConstituency string
	PersonCaucus       string
	PersonProvince     string
	SequenceNumber     int
	EventID            string
	VideoURL           string
	SourceCreatedAt    *time.Time
	SourceUpdatedAt    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
