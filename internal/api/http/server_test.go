package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/commons-pulse/commons-pulse/internal/application/analytics"
	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
	billMocks "github.com/commons-pulse/commons-pulse/internal/domain/bill/mocks"
	interventionMocks "github.com/commons-pulse/commons-pulse/internal/domain/intervention/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	memberMocks "github.com/commons-pulse/commons-pulse/internal/domain/member/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	statsMocks "github.com/commons-pulse/commons-pulse/internal/domain/stats/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
	syncstateMocks "github.com/commons-pulse/commons-pulse/internal/domain/syncstate/mocks"
	voteMocks "github.com/commons-pulse/commons-pulse/internal/domain/vote/mocks"
)

type serverFixture struct {
	members       *memberMocks.MockRepository
	stats         *statsMocks.MockRepository
	bills         *billMocks.MockRepository
	interventions *interventionMocks.MockRepository
	committee     *interventionMocks.MockCommitteeRepository
	runs          *syncstateMocks.MockRunRepository
	deadLetters   *syncstateMocks.MockDeadLetterRepository
	router        http.Handler
}

func newServerFixture(t *testing.T) *serverFixture {
	ctrl := gomock.NewController(t)
	f := &serverFixture{
		members:       memberMocks.NewMockRepository(ctrl),
		stats:         statsMocks.NewMockRepository(ctrl),
		bills:         billMocks.NewMockRepository(ctrl),
		interventions: interventionMocks.NewMockRepository(ctrl),
		committee:     interventionMocks.NewMockCommitteeRepository(ctrl),
		runs:          syncstateMocks.NewMockRunRepository(ctrl),
		deadLetters:   syncstateMocks.NewMockDeadLetterRepository(ctrl),
	}
	svc := analytics.NewService(
		f.members,
		voteMocks.NewMockRepository(ctrl),
		voteMocks.NewMockCastRepository(ctrl),
		f.stats,
		zerolog.Nop(),
	)
	srv := NewServer(svc, f.stats, f.members, f.bills, f.interventions, f.committee, f.runs, f.deadLetters, "45", "1", zerolog.Nop())
	f.router = srv.Router()
	return f
}

func (f *serverFixture) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func snapshot(personID, party string, presence, activity float64) *stats.MemberStat {
	return &stats.MemberStat{
		Parliament:         "45",
		Session:            "1",
		PersonID:           personID,
		Name:               "Member " + personID,
		Party:              party,
		Province:           "ON",
		PresenceRate:       presence,
		ActivityIndexScore: activity,
		MetricsVersion:     stats.MetricsVersion,
		Rankings:           map[string]stats.Ranking{},
		ComputedAt:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHealth(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestSessionFacts(t *testing.T) {
	f := newServerFixture(t)
	computed := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	f.stats.EXPECT().GetSessionFacts(gomock.Any(), "45", "1").Return(&stats.SessionFacts{
		Parliament: "45",
		Session:    "1",
		TotalVotes: 240,
		ComputedAt: &computed,
	}, nil)
	f.members.EXPECT().Count(gomock.Any()).Return(int64(343), nil)

	rec := f.do(t, http.MethodGet, "/api/stats/session")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	facts := body["facts"].(map[string]interface{})
	assert.Equal(t, float64(240), facts["total_votes"])
	assert.Equal(t, float64(343), body["roster_members"])
}

func TestSessionFacts_NotSynced(t *testing.T) {
	f := newServerFixture(t)
	f.stats.EXPECT().GetSessionFacts(gomock.Any(), "45", "1").Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/stats/session")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMemberStats_DefaultSession(t *testing.T) {
	f := newServerFixture(t)
	f.stats.EXPECT().
		ListMemberStats(gomock.Any(), "45", "1", stats.MemberStatFilter{}).
		Return([]*stats.MemberStat{snapshot("a", "Liberal", 90, 7)}, nil)

	rec := f.do(t, http.MethodGet, "/api/stats/members")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "45", body["parliament"])
	assert.Equal(t, "1", body["session"])
	assert.Equal(t, float64(1), body["count"])
}

func TestMemberStats_SessionOverride(t *testing.T) {
	f := newServerFixture(t)
	f.stats.EXPECT().
		ListMemberStats(gomock.Any(), "44", "2", stats.MemberStatFilter{}).
		Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/stats/members?parliament=44&session=2")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "44", body["parliament"])
	assert.Equal(t, float64(0), body["count"])
}

func TestMemberMetrics_ExpressionFilter(t *testing.T) {
	f := newServerFixture(t)
	f.stats.EXPECT().
		ListMemberStats(gomock.Any(), "45", "1", stats.MemberStatFilter{Party: "Liberal", Limit: 500}).
		Return([]*stats.MemberStat{
			snapshot("a", "Liberal", 92.5, 7),
			snapshot("b", "Liberal", 61, 3),
		}, nil)

	rec := f.do(t, http.MethodGet, "/api/metrics/members?party=Liberal&filter="+
		"presence_rate+%3E+80+%26%26+party+%3D%3D+%27Liberal%27")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	members := body["members"].([]interface{})
	require.Len(t, members, 1)
	assert.Equal(t, "a", members[0].(map[string]interface{})["person_id"])
}

func TestMemberMetrics_InvalidLimit(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/metrics/members?limit=zero")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARAM", decodeBody(t, rec)["error"])
}

func TestMemberMetrics_InvalidExpression(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/metrics/members?filter=presence_rate+%3E")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILTER", decodeBody(t, rec)["error"])
}

func TestMemberMetricDetail_NotFound(t *testing.T) {
	f := newServerFixture(t)
	f.stats.EXPECT().GetMemberStat(gomock.Any(), "45", "1", "ghost").Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/metrics/member/ghost")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, rec)["error"])
}

func TestMemberMetricDetail_SessionTotals(t *testing.T) {
	f := newServerFixture(t)
	target := snapshot("a", "Liberal", 90, 7)
	f.stats.EXPECT().GetMemberStat(gomock.Any(), "45", "1", "a").Return(target, nil)
	f.stats.EXPECT().
		ListMemberStats(gomock.Any(), "45", "1", stats.MemberStatFilter{Party: "Liberal"}).
		Return([]*stats.MemberStat{target}, nil)
	f.stats.EXPECT().
		ListMemberStats(gomock.Any(), "45", "1", stats.MemberStatFilter{Province: "ON"}).
		Return([]*stats.MemberStat{target}, nil)
	f.members.EXPECT().GetByPersonID(gomock.Any(), "a").Return(&member.Member{
		PersonID: "a",
		FullName: "Jane Doe",
	}, nil)
	f.interventions.EXPECT().CountBySession(gomock.Any(), "45", "1").Return(int64(1200), nil)
	f.committee.EXPECT().CountBySession(gomock.Any(), "45", "1").Return(int64(340), nil)

	rec := f.do(t, http.MethodGet, "/api/metrics/member/a")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	m := body["member"].(map[string]interface{})
	assert.Equal(t, "a", m["person_id"])
	roster := body["roster"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", roster["full_name"])
	totals := body["session_totals"].(map[string]interface{})
	assert.Equal(t, float64(1200), totals["interventions_synced"])
	assert.Equal(t, float64(340), totals["committee_interventions_synced"])
	comparisons := body["comparisons"].(map[string]interface{})
	assert.Contains(t, comparisons, "party")
	assert.Contains(t, comparisons, "province")
}

func TestComputeSession_Failure(t *testing.T) {
	f := newServerFixture(t)
	f.members.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	rec := f.do(t, http.MethodPost, "/api/compute/session/45/1")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "COMPUTE_FAILED", decodeBody(t, rec)["error"])
}

func TestSyncRuns(t *testing.T) {
	f := newServerFixture(t)
	run := syncstate.NewRun("45", "1")
	f.runs.EXPECT().ListRecent(gomock.Any(), 20).Return([]*syncstate.Run{run}, nil)

	rec := f.do(t, http.MethodGet, "/api/sync/runs")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	runs := body["runs"].([]interface{})
	assert.Equal(t, run.RunID.String(), runs[0].(map[string]interface{})["run_id"])
}

func TestListBills(t *testing.T) {
	f := newServerFixture(t)
	f.bills.EXPECT().ListBySession(gomock.Any(), "45", "1").Return([]*bill.Bill{
		{Number: "C-5", Parliament: "45", Session: "1", Title: "An Act"},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/bills")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	bills := body["bills"].([]interface{})
	assert.Equal(t, "C-5", bills[0].(map[string]interface{})["number"])
}

func TestDeadLetterList(t *testing.T) {
	f := newServerFixture(t)
	f.deadLetters.EXPECT().
		ListByEntity(gomock.Any(), syncstate.EntityVoteCasts, 50).
		Return([]*syncstate.DeadLetter{
			{ID: 1, Entity: syncstate.EntityVoteCasts, NaturalKey: map[string]any{"division_number": "3"}, Error: "db down"},
		}, nil)

	rec := f.do(t, http.MethodGet, "/api/sync/dead-letters?entity=vote_casts")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
}

func TestDeadLetterList_RequiresEntity(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/sync/dead-letters")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARAM", decodeBody(t, rec)["error"])
}

func TestExportMembersCSV(t *testing.T) {
	f := newServerFixture(t)
	ms := snapshot("a", "Liberal", 90.5, 7.25)
	ms.Present = 10
	ms.TotalVotes = 12
	ms.Rankings[stats.MetricActivityIndex] = stats.Ranking{Rank: 3, Percentile: 88}
	f.stats.EXPECT().
		ListMemberStats(gomock.Any(), "45", "1", stats.MemberStatFilter{Sort: "name", Order: "asc"}).
		Return([]*stats.MemberStat{ms}, nil)
	f.members.EXPECT().List(gomock.Any()).Return([]*member.Member{
		{PersonID: "a", FullName: "Jane Doe"},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/export/members.csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "house_members_data_p45_s1.csv")

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	row := rows[1]
	assert.Equal(t, "a", row[0])
	assert.Equal(t, "Jane Doe", row[2], "full name merged from the roster")
	assert.Equal(t, "90.5", row[7])
	assert.Equal(t, "3", row[23])
	assert.Equal(t, "88", row[24])
}
