package openparl

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// FlexString decodes a JSON string or number into a string. The source is
// inconsistent about identifier types across endpoint versions.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexInt decodes a JSON number or numeric string into an int.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		v, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		n = int(v)
	}
	*f = FlexInt(n)
	return nil
}

// StringList decodes a JSON array, a bare string, or null into a slice.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*l = nil
		return nil
	}
	if len(s) > 0 && s[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var item string
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	if item == "" {
		*l = nil
		return nil
	}
	*l = StringList{item}
	return nil
}

// timestampLayouts are tried in order when decoding source timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp decodes the source's assorted timestamp formats.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// TimePtr returns the parsed time, or nil when absent.
func (t *Timestamp) TimePtr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// Pagination is the listing envelope's continuation descriptor. Older
// endpoints report has_more, newer ones has_next.
type Pagination struct {
	HasNext bool `json:"has_next"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// Continue reports whether another page follows.
func (p Pagination) Continue() bool { return p.HasNext || p.HasMore }

// MemberDTO is a member as the source serves it. The long-form text fields
// (short_summary, keywords, summary_data) are deliberately unmapped: they
// are bulky, unused downstream, and dropped at the ingestion boundary.
type MemberDTO struct {
	PersonID                   FlexString          `json:"person_id"`
	FullName                   string              `json:"full_name"`
	Name                       string              `json:"name"`
	Chamber                    string              `json:"chamber"`
	Party                      string              `json:"party"`
	CaucusShortName            string              `json:"caucus_short_name"`
	Province                   string              `json:"province"`
	Constituency               string              `json:"constituency"`
	FromDatetime               *Timestamp          `json:"from_datetime"`
	PoliticalAlignmentScore    *float64            `json:"political_alignment_score"`
	DebateInterventionCount    FlexInt             `json:"debate_intervention_count"`
	CommitteeInterventionCount FlexInt             `json:"committee_intervention_count"`
	BillsSponsored             FlexInt             `json:"bills_sponsored"`
	ElectionHistory            []ElectionEventDTO  `json:"election_history"`
	Committees                 []CommitteeRoleDTO  `json:"committees"`
	Associations               []AssociationDTO    `json:"associations"`
	CreatedAt                  *Timestamp          `json:"created_at"`
	UpdatedAt                  *Timestamp          `json:"updated_at"`
}

type ElectionEventDTO struct {
	Date         *Timestamp `json:"election_date"`
	ResultType   string     `json:"election_result_type"`
	Constituency string     `json:"constituency"`
}

type CommitteeRoleDTO struct {
	CommitteeName string `json:"committee_name"`
	Role          string `json:"role"`
}

type AssociationDTO struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
}

// DisplayName resolves the two name fields the source alternates between.
func (d *MemberDTO) DisplayName() string {
	if d.FullName != "" {
		return d.FullName
	}
	return d.Name
}

// LastModified resolves updated_at with a created_at fallback.
func (d *MemberDTO) LastModified() *time.Time {
	if ts := d.UpdatedAt.TimePtr(); ts != nil {
		return ts
	}
	return d.CreatedAt.TimePtr()
}

// Member maps the DTO onto the domain entity.
func (d *MemberDTO) Member() *member.Member {
	m := &member.Member{
		PersonID:                   d.PersonID.String(),
		FullName:                   d.DisplayName(),
		Chamber:                    d.Chamber,
		Party:                      d.Party,
		CaucusShortName:            d.CaucusShortName,
		Province:                   d.Province,
		Constituency:               d.Constituency,
		FromDatetime:               d.FromDatetime.TimePtr(),
		PoliticalAlignmentScore:    d.PoliticalAlignmentScore,
		DebateInterventionCount:    int(d.DebateInterventionCount),
		CommitteeInterventionCount: int(d.CommitteeInterventionCount),
		BillsSponsored:             int(d.BillsSponsored),
		SourceCreatedAt:            d.CreatedAt.TimePtr(),
		SourceUpdatedAt:            d.UpdatedAt.TimePtr(),
	}
	for _, e := range d.ElectionHistory {
		m.ElectionHistory = append(m.ElectionHistory, member.ElectionEvent{
			Date:         e.Date.TimePtr(),
			ResultType:   e.ResultType,
			Constituency: e.Constituency,
		})
	}
	for _, c := range d.Committees {
		m.Committees = append(m.Committees, member.CommitteeRole{
			CommitteeName: c.CommitteeName,
			Role:          c.Role,
		})
	}
	for _, a := range d.Associations {
		m.Associations = append(m.Associations, member.AssociationRole{
			Organization: a.Organization,
			Role:         a.Role,
		})
	}
	return m
}

type memberListEnvelope struct {
	Members    []MemberDTO `json:"members"`
	Data       []MemberDTO `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func (e *memberListEnvelope) items() []MemberDTO {
	if len(e.Members) > 0 {
		return e.Members
	}
	return e.Data
}

// memberDetailEnvelope handles both the wrapped and the bare detail shape.
type memberDetailEnvelope struct {
	Member *MemberDTO `json:"member"`
	bare   MemberDTO
}

func (e *memberDetailEnvelope) UnmarshalJSON(data []byte) error {
	type wrapped struct {
		Member *MemberDTO `json:"member"`
	}
	var w wrapped
	if err := json.Unmarshal(data, &w); err == nil && w.Member != nil {
		e.Member = w.Member
		return nil
	}
	if err := json.Unmarshal(data, &e.bare); err != nil {
		return err
	}
	e.Member = &e.bare
	return nil
}

// VoteDTO is a recorded division as the source serves it.
type VoteDTO struct {
	Parliament     FlexString `json:"parliament"`
	Session        FlexString `json:"session"`
	DivisionNumber FlexInt    `json:"division_number"`
	Date           *Timestamp `json:"date"`
	VoteDate       *Timestamp `json:"vote_date"`
	Subject        string     `json:"subject"`
	Description    string     `json:"description"`
	Result         string     `json:"result"`
	BillNumber     string     `json:"bill_number"`
	CreatedAt      *Timestamp `json:"created_at"`
	UpdatedAt      *Timestamp `json:"updated_at"`
}

func (d *VoteDTO) LastModified() *time.Time {
	if ts := d.UpdatedAt.TimePtr(); ts != nil {
		return ts
	}
	return d.CreatedAt.TimePtr()
}

func (d *VoteDTO) Vote() *vote.Vote {
	subject := d.Subject
	if subject == "" {
		subject = d.Description
	}
	date := d.Date.TimePtr()
	if date == nil {
		date = d.VoteDate.TimePtr()
	}
	return &vote.Vote{
		Parliament:      d.Parliament.String(),
		Session:         d.Session.String(),
		DivisionNumber:  int(d.DivisionNumber),
		Date:            date,
		Subject:         subject,
		Result:          d.Result,
		BillNumber:      d.BillNumber,
		SourceCreatedAt: d.CreatedAt.TimePtr(),
		SourceUpdatedAt: d.UpdatedAt.TimePtr(),
	}
}

type voteListEnvelope struct {
	Votes      []VoteDTO  `json:"votes"`
	Results    []VoteDTO  `json:"results"`
	Pagination Pagination `json:"pagination"`
}

func (e *voteListEnvelope) items() []VoteDTO {
	if len(e.Votes) > 0 {
		return e.Votes
	}
	return e.Results
}

// CastDTO is one member's ballot on a division.
type CastDTO struct {
	PersonID     FlexString `json:"person_id"`
	Decision     string     `json:"decision"`
	VoteValue    string     `json:"vote"`
	MemberName   string     `json:"member_name"`
	Name         string     `json:"name"`
	Party        string     `json:"party"`
	Province     string     `json:"province"`
	Constituency string     `json:"constituency"`
}

func (d *CastDTO) decisionValue() string {
	if d.Decision != "" {
		return d.Decision
	}
	return d.VoteValue
}

func (d *CastDTO) Cast(parliament, session string, divisionNumber int) *vote.Cast {
	name := d.MemberName
	if name == "" {
		name = d.Name
	}
	return &vote.Cast{
		Parliament:     parliament,
		Session:        session,
		DivisionNumber: divisionNumber,
		PersonID:       d.PersonID.String(),
		Decision:       vote.Decision(d.decisionValue()),
		MemberName:     name,
		Party:          d.Party,
		Province:       d.Province,
		Constituency:   d.Constituency,
	}
}

// castListEnvelope handles the wrapped shapes and the bare-array shape.
type castListEnvelope struct {
	VotesCast []CastDTO `json:"votes_cast"`
	Results   []CastDTO `json:"results"`
}

func (e *castListEnvelope) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) > 0 && s[0] == '[' {
		return json.Unmarshal(data, &e.Results)
	}
	type alias castListEnvelope
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = castListEnvelope(a)
	return nil
}

func (e *castListEnvelope) items() []CastDTO {
	if len(e.VotesCast) > 0 {
		return e.VotesCast
	}
	return e.Results
}

// BillDTO is a bill as the source serves it.
type BillDTO struct {
	Number          string     `json:"number"`
	Title           string     `json:"title"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	SponsorPersonID FlexString `json:"sponsor_person_id"`
	SponsorName     string     `json:"sponsor_name"`
	IntroducedDate  *Timestamp `json:"introduced_date"`
	CreatedAt       *Timestamp `json:"created_at"`
	UpdatedAt       *Timestamp `json:"updated_at"`
}

func (d *BillDTO) LastModified() *time.Time {
	if ts := d.UpdatedAt.TimePtr(); ts != nil {
		return ts
	}
	return d.CreatedAt.TimePtr()
}

func (d *BillDTO) Bill(parliament, session string) *bill.Bill {
	title := d.Title
	if title == "" {
		title = d.Name
	}
	return &bill.Bill{
		Number:          d.Number,
		Parliament:      parliament,
		Session:         session,
		Title:           title,
		Status:          d.Status,
		SponsorPersonID: d.SponsorPersonID.String(),
		SponsorName:     d.SponsorName,
		IntroducedDate:  d.IntroducedDate.TimePtr(),
		SourceCreatedAt: d.CreatedAt.TimePtr(),
		SourceUpdatedAt: d.UpdatedAt.TimePtr(),
	}
}

type billListEnvelope struct {
	Bills      []BillDTO  `json:"bills"`
	Results    []BillDTO  `json:"results"`
	Pagination Pagination `json:"pagination"`
}

func (e *billListEnvelope) items() []BillDTO {
	if len(e.Bills) > 0 {
		return e.Bills
	}
	return e.Results
}

// InterventionDTO is one floor speech, delivered under a member's nested
// listing. Session-identifying fields appear under two naming schemes.
type InterventionDTO struct {
	ID                FlexString `json:"id"`
	InterventionID    FlexString `json:"intervention_id"`
	Parliament        FlexString `json:"parliament"`
	ParliamentNumber  FlexString `json:"parliament_number"`
	Session           FlexString `json:"session"`
	SessionNumber     FlexString `json:"session_number"`
	Time              *Timestamp `json:"intervention_time"`
	Type              string     `json:"intervention_type"`
	SubjectOfBusiness string     `json:"subject_of_business"`
	PublicationTitle  string     `json:"publication_title"`
	EventID           FlexString `json:"event_id"`
	VideoURL          string     `json:"video_url"`
	BillMentions      StringList `json:"bill_mentions"`
	HansardPage       FlexString `json:"hansard_page"`
	CreatedAt         *Timestamp `json:"created_at"`
	UpdatedAt         *Timestamp `json:"updated_at"`
}

func (d *InterventionDTO) identifier() string {
	if d.InterventionID != "" {
		return d.InterventionID.String()
	}
	return d.ID.String()
}

// SessionCoordinates resolves the alternate session-field names, falling
// back to the requested coordinates when the item carries none.
func (d *InterventionDTO) SessionCoordinates(parliament, session string) (string, string) {
	p := d.ParliamentNumber.String()
	if p == "" {
		p = d.Parliament.String()
	}
	if p == "" {
		p = parliament
	}
	s := d.SessionNumber.String()
	if s == "" {
		s = d.Session.String()
	}
	if s == "" {
		s = session
	}
	return p, s
}

func (d *InterventionDTO) LastModified() *time.Time {
	if ts := d.UpdatedAt.TimePtr(); ts != nil {
		return ts
	}
	return d.CreatedAt.TimePtr()
}

func (d *InterventionDTO) Intervention(parliament, session, personID string) *intervention.Intervention {
	var mentions []string
	for _, m := range d.BillMentions {
		if m != "" {
			mentions = append(mentions, m)
		}
	}
	return &intervention.Intervention{
		Parliament:        parliament,
		Session:           session,
		PersonID:          personID,
		InterventionID:    d.identifier(),
		Time:              d.Time.TimePtr(),
		Type:              d.Type,
		SubjectOfBusiness: d.SubjectOfBusiness,
		PublicationTitle:  d.PublicationTitle,
		EventID:           d.EventID.String(),
		VideoURL:          d.VideoURL,
		BillMentions:      mentions,
		HansardPage:       d.HansardPage.String(),
		SourceCreatedAt:   d.CreatedAt.TimePtr(),
		SourceUpdatedAt:   d.UpdatedAt.TimePtr(),
	}
}

// CommitteeInterventionDTO is one committee-meeting speech.
type CommitteeInterventionDTO struct {
	ID                 FlexString `json:"id"`
	InterventionID     FlexString `json:"intervention_id"`
	Parliament         FlexString `json:"parliament"`
	ParliamentNumber   FlexString `json:"parliament_number"`
	Session            FlexString `json:"session"`
	SessionNumber      FlexString `json:"session_number"`
	CommitteeMeetingID FlexString `json:"committee_meeting_id"`
	CommitteeCode      string     `json:"committee_code"`
	CommitteeName      string     `json:"committee_name"`
	MeetingNumber      FlexInt    `json:"meeting_number"`
	MeetingDate        *Timestamp `json:"meeting_date"`
	Time               *Timestamp `json:"intervention_time"`
	Type               string     `json:"intervention_type"`
	SubjectOfBusiness  string     `json:"subject_of_business"`
	IsMember           bool       `json:"is_member"`
	AffiliationType    string     `json:"affiliation_type"`
	PersonFullName     string     `json:"person_full_name"`
	PersonConstituency string     `json:"person_constituency"`
	PersonCaucus       string     `json:"person_caucus"`
	PersonProvince     string     `json:"person_province"`
	SequenceNumber     FlexInt    `json:"sequence_number"`
	EventID            FlexString `json:"event_id"`
	VideoURL           string     `json:"video_url"`
	CreatedAt          *Timestamp `json:"created_at"`
	UpdatedAt          *Timestamp `json:"updated_at"`
}

func (d *CommitteeInterventionDTO) identifier() string {
	if d.InterventionID != "" {
		return d.InterventionID.String()
	}
	return d.ID.String()
}

func (d *CommitteeInterventionDTO) SessionCoordinates(parliament, session string) (string, string) {
	p := d.ParliamentNumber.String()
	if p == "" {
		p = d.Parliament.String()
	}
	if p == "" {
		p = parliament
	}
	s := d.SessionNumber.String()
	if s == "" {
		s = d.Session.String()
	}
	if s == "" {
		s = session
	}
	return p, s
}

func (d *CommitteeInterventionDTO) LastModified() *time.Time {
	if ts := d.UpdatedAt.TimePtr(); ts != nil {
		return ts
	}
	return d.CreatedAt.TimePtr()
}

func (d *CommitteeInterventionDTO) Intervention(parliament, session, personID string) *intervention.CommitteeIntervention {
	return &intervention.CommitteeIntervention{
		Parliament:         parliament,
		Session:            session,
		PersonID:           personID,
		InterventionID:     d.identifier(),
		CommitteeMeetingID: d.CommitteeMeetingID.String(),
		CommitteeCode:      d.CommitteeCode,
		CommitteeName:      d.CommitteeName,
		MeetingNumber:      int(d.MeetingNumber),
		MeetingDate:        d.MeetingDate.TimePtr(),
		Time:               d.Time.TimePtr(),
		Type:               d.Type,
		SubjectOfBusiness:  d.SubjectOfBusiness,
		IsMember:           d.IsMember,
		AffiliationType:    d.AffiliationType,
		PersonFullName:     d.PersonFullName,
		PersonConstituency: d.PersonConstituency,
		PersonCaucus:       d.PersonCaucus,
		PersonProvince:     d.PersonProvince,
		SequenceNumber:     int(d.SequenceNumber),
		EventID:            d.EventID.String(),
		VideoURL:           d.VideoURL,
		SourceCreatedAt:    d.CreatedAt.TimePtr(),
		SourceUpdatedAt:    d.UpdatedAt.TimePtr(),
	}
}

type interventionListEnvelope struct {
	Interventions []InterventionDTO `json:"interventions"`
	Results       []InterventionDTO `json:"results"`
	Pagination    Pagination        `json:"pagination"`
}

func (e *interventionListEnvelope) items() []InterventionDTO {
	if len(e.Interventions) > 0 {
		return e.Interventions
	}
	return e.Results
}

type committeeInterventionListEnvelope struct {
	Interventions []CommitteeInterventionDTO `json:"interventions"`
	Results       []CommitteeInterventionDTO `json:"results"`
	Pagination    Pagination                 `json:"pagination"`
}

func (e *committeeInterventionListEnvelope) items() []CommitteeInterventionDTO {
	if len(e.Interventions) > 0 {
		return e.Interventions
	}
	return e.Results
}
