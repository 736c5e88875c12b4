package openparl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastBackoff swaps the retry policies for near-instant ones so tests
// exercise the loop without real sleeps, and restores them on cleanup.
func fastBackoff(t *testing.T) {
	t.Helper()
	origListing, origDetail := listingBackoff, detailBackoff
	listingBackoff = backoffPolicy{Base: time.Millisecond, Max: time.Millisecond, Attempts: 3}
	detailBackoff = backoffPolicy{Base: time.Millisecond, Max: time.Millisecond, Attempts: 2}
	t.Cleanup(func() {
		listingBackoff, detailBackoff = origListing, origDetail
	})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:        srv.URL,
		RequestsPerSec: 1000,
		PageSize:       2,
		PageDelay:      time.Millisecond,
	}, zerolog.Nop())
}

func TestBackoffPolicy_CappedExponential(t *testing.T) {
	p := backoffPolicy{Base: 2 * time.Second, Max: 30 * time.Second, Attempts: 8}
	assert.Equal(t, 2*time.Second, p.delay(0))
	assert.Equal(t, 4*time.Second, p.delay(1))
	assert.Equal(t, 16*time.Second, p.delay(3))
	assert.Equal(t, 30*time.Second, p.delay(4), "32s caps at the maximum")
	assert.Equal(t, 30*time.Second, p.delay(7))
	assert.Equal(t, 30*time.Second, p.delay(62), "overflowed shift still caps")
}

func TestClient_ListMembers_Pagination(t *testing.T) {
	var queries []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/members", r.URL.Path)
		queries = append(queries, r.URL.RawQuery)
		offset := r.URL.Query().Get("offset")
		if offset == "0" {
			fmt.Fprint(w, `{"members":[{"person_id":"a"},{"person_id":"b"}],"pagination":{"has_next":true}}`)
			return
		}
		fmt.Fprint(w, `{"members":[{"person_id":"c"}],"pagination":{"has_next":false}}`)
	}))

	members, hasNext, err := c.ListMembers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.True(t, hasNext)

	members, hasNext, err = c.ListMembers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "c", members[0].PersonID)
	assert.False(t, hasNext)

	require.Len(t, queries, 2)
	assert.Contains(t, queries[0], "current=true")
	assert.Contains(t, queries[0], "limit=2")
	assert.Contains(t, queries[1], "offset=2")
}

func TestClient_Get_RetriesRateLimit(t *testing.T) {
	fastBackoff(t)

	var hits int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"members":[{"person_id":"a"}],"pagination":{}}`)
	}))

	members, _, err := c.ListMembers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 3, hits)
}

func TestClient_Get_RetriesExhausted(t *testing.T) {
	fastBackoff(t)

	var hits int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, _, err := c.ListMembers(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))
	assert.Equal(t, listingBackoff.Attempts, hits)
}

func TestClient_Get_NonRetryableStatus(t *testing.T) {
	var hits int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetMember(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRateLimited(err))
	assert.Equal(t, 1, hits, "non-429 statuses are not retried")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestClient_GetMember_BareDetailShape(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/members/a", r.URL.Path)
		fmt.Fprint(w, `{"person_id":"a","full_name":"A","party":"Liberal"}`)
	}))

	m, err := c.GetMember(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", m.PersonID)
	assert.Equal(t, "Liberal", m.Party)
}

func TestClient_ListVotes_ReportsTotal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/votes", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "45", q.Get("parliament"))
		assert.Equal(t, "1", q.Get("session"))
		assert.Equal(t, "date_asc", q.Get("sort"))
		fmt.Fprint(w, `{"votes":[{"division_number":1},{"division_number":2}],"pagination":{"has_more":true,"total":240}}`)
	}))

	votes, hasNext, total, err := c.ListVotes(context.Background(), "45", "1", 0)
	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.True(t, hasNext)
	assert.Equal(t, 240, total)
}

func TestClient_ListVoteCasts_BareArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/votes/45/1/12/cast", r.URL.Path)
		fmt.Fprint(w, `[{"person_id":"a","decision":"Yea"},{"person_id":"b","vote":"Nay"}]`)
	}))

	casts, err := c.ListVoteCasts(context.Background(), "45", "1", 12)
	require.NoError(t, err)
	require.Len(t, casts, 2)
	assert.Equal(t, 12, casts[0].DivisionNumber)
	assert.Equal(t, "Nay", string(casts[1].Decision))
}

func TestClient_ListBills_CombinedSessionCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bills", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "45-1", q.Get("session"))
		assert.Equal(t, "3", q.Get("page"))
		fmt.Fprint(w, `{"bills":[{"number":"C-5"}],"pagination":{"has_next":false}}`)
	}))

	bills, hasNext, err := c.ListBills(context.Background(), "45", "1", 3)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "45", bills[0].Parliament)
	assert.False(t, hasNext)
}

func TestClient_ListMemberInterventions_SessionTagging(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/members/a/interventions", r.URL.Path)
		fmt.Fprint(w, `{"interventions":[
			{"intervention_id":"1","parliament_number":"44","session_number":"2"},
			{"intervention_id":"2"}
		],"pagination":{}}`)
	}))

	items, _, err := c.ListMemberInterventions(context.Background(), "45", "1", "a", 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "44", items[0].Parliament, "reported session kept for downstream filtering")
	assert.Equal(t, "45", items[1].Parliament, "untagged items assume the requested session")
	assert.Equal(t, "a", items[0].PersonID)
}

func TestClient_Get_Cancellation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := c.ListMembers(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
