package openparl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// backoffPolicy bounds the retry loop for one request.
type backoffPolicy struct {
	Base     time.Duration
	Max      time.Duration
	Attempts int
}

// delay returns the capped exponential delay for a zero-based attempt.
func (p backoffPolicy) delay(attempt int) time.Duration {
	d := p.Base << attempt
	if d <= 0 || d > p.Max {
		return p.Max
	}
	return d
}

// Primary listing pages must eventually make progress, so they get a long
// capped-exponential budget before the synchronizer aborts. Detail lookups
// are bounded tightly so one unreachable sub-resource cannot stall a run.
var (
	listingBackoff = backoffPolicy{Base: 2 * time.Second, Max: 30 * time.Second, Attempts: 8}
	detailBackoff  = backoffPolicy{Base: 3 * time.Second, Max: 3 * time.Second, Attempts: 3}
)

// Config holds client settings.
type Config struct {
	BaseURL        string
	RequestsPerSec float64
	PageSize       int
	PageDelay      time.Duration
	RequestTimeout time.Duration
}

// Client fetches legislative records from the remote source. The rate
// limiter is shared across every caller, so concurrent synchronizers draw
// from one request budget.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	pageSize   int
	pageDelay  time.Duration
	log        zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 5
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = 200 * time.Millisecond
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		pageSize:   cfg.PageSize,
		pageDelay:  cfg.PageDelay,
		log:        logger.With().Str("component", "openparl").Logger(),
	}
}

// PageSize is the listing page size the client requests.
func (c *Client) PageSize() int { return c.pageSize }

// Throttle inserts the inter-page delay, honoring cancellation.
func (c *Client) Throttle(ctx context.Context) error {
	return sleepCtx(ctx, c.pageDelay)
}

// ListMembers fetches one page of the current-members listing.
func (c *Client) ListMembers(ctx context.Context, offset int) ([]*member.Member, bool, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("current", "true")

	var envelope memberListEnvelope
	if err := c.get(ctx, "/members", query, listingBackoff, &envelope); err != nil {
		return nil, false, err
	}
	dtos := envelope.items()
	members := make([]*member.Member, 0, len(dtos))
	for i := range dtos {
		members = append(members, dtos[i].Member())
	}
	return members, envelope.Pagination.Continue(), nil
}

// GetMember fetches one member's detail record, which carries the roles,
// committees and election history the listing omits.
func (c *Client) GetMember(ctx context.Context, personID string) (*member.Member, error) {
	var envelope memberDetailEnvelope
	if err := c.get(ctx, "/members/"+url.PathEscape(personID), nil, detailBackoff, &envelope); err != nil {
		return nil, err
	}
	if envelope.Member == nil {
		return nil, fmt.Errorf("openparl: empty member detail for %s", personID)
	}
	return envelope.Member.Member(), nil
}

// ListVotes fetches one page of a session's divisions, oldest first.
func (c *Client) ListVotes(ctx context.Context, parliament, session string, offset int) ([]*vote.Vote, bool, int, error) {
	query := url.Values{}
	query.Set("parliament", parliament)
	query.Set("session", session)
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("sort", "date_asc")

	var envelope voteListEnvelope
	if err := c.get(ctx, "/votes", query, listingBackoff, &envelope); err != nil {
		return nil, false, 0, err
	}
	dtos := envelope.items()
	votes := make([]*vote.Vote, 0, len(dtos))
	for i := range dtos {
		votes = append(votes, dtos[i].Vote())
	}
	return votes, envelope.Pagination.Continue(), envelope.Pagination.Total, nil
}

// ListVoteCasts fetches every ballot on one division. This is a detail
// lookup: bounded retries, the caller falls back gracefully on failure.
func (c *Client) ListVoteCasts(ctx context.Context, parliament, session string, divisionNumber int) ([]*vote.Cast, error) {
	path := fmt.Sprintf("/votes/%s/%s/%d/cast", url.PathEscape(parliament), url.PathEscape(session), divisionNumber)
	var envelope castListEnvelope
	if err := c.get(ctx, path, nil, detailBackoff, &envelope); err != nil {
		return nil, err
	}
	dtos := envelope.items()
	casts := make([]*vote.Cast, 0, len(dtos))
	for i := range dtos {
		casts = append(casts, dtos[i].Cast(parliament, session, divisionNumber))
	}
	return casts, nil
}

// ListBills fetches one page of a session's bills. The bills endpoint is
// page-numbered rather than offset-based and takes a combined session code.
func (c *Client) ListBills(ctx context.Context, parliament, session string, page int) ([]*bill.Bill, bool, error) {
	query := url.Values{}
	query.Set("session", parliament+"-"+session)
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("page", strconv.Itoa(page))

	var envelope billListEnvelope
	if err := c.get(ctx, "/bills", query, listingBackoff, &envelope); err != nil {
		return nil, false, err
	}
	dtos := envelope.items()
	bills := make([]*bill.Bill, 0, len(dtos))
	for i := range dtos {
		bills = append(bills, dtos[i].Bill(parliament, session))
	}
	return bills, envelope.Pagination.Continue(), nil
}

// ListMemberInterventions fetches one page of a member's floor speeches.
// Items are tagged with the session coordinates they report, which the
// caller filters against the target session.
func (c *Client) ListMemberInterventions(ctx context.Context, parliament, session, personID string, offset int) ([]*intervention.Intervention, bool, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))

	var envelope interventionListEnvelope
	path := "/members/" + url.PathEscape(personID) + "/interventions"
	if err := c.get(ctx, path, query, listingBackoff, &envelope); err != nil {
		return nil, false, err
	}
	dtos := envelope.items()
	items := make([]*intervention.Intervention, 0, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		p, s := dto.SessionCoordinates(parliament, session)
		items = append(items, dto.Intervention(p, s, personID))
	}
	return items, envelope.Pagination.Continue(), nil
}

// ListMemberCommitteeInterventions fetches one page of a member's
// committee speeches.
func (c *Client) ListMemberCommitteeInterventions(ctx context.Context, parliament, session, personID string, offset int) ([]*intervention.CommitteeIntervention, bool, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))

	var envelope committeeInterventionListEnvelope
	path := "/committee-interventions/member/" + url.PathEscape(personID)
	if err := c.get(ctx, path, query, listingBackoff, &envelope); err != nil {
		return nil, false, err
	}
	dtos := envelope.items()
	items := make([]*intervention.CommitteeIntervention, 0, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		p, s := dto.SessionCoordinates(parliament, session)
		items = append(items, dto.Intervention(p, s, personID))
	}
	return items, envelope.Pagination.Continue(), nil
}

// get performs one GET with rate limiting and the given retry policy.
// 429 responses and transport errors are retried with capped exponential
// delay; any other non-OK status is returned immediately as a StatusError.
func (c *Client) get(ctx context.Context, path string, query url.Values, policy backoffPolicy, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	for attempt := 0; attempt < policy.Attempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warn().Err(err).Str("url", u).Int("attempt", attempt+1).Msg("request failed, retrying")
			if err := sleepCtx(ctx, policy.delay(attempt)); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			delay := policy.delay(attempt)
			if ra := retryAfter(resp); ra > 0 && ra <= policy.Max {
				delay = ra
			}
			resp.Body.Close()
			c.log.Warn().Str("url", u).Dur("backoff", delay).Int("attempt", attempt+1).Msg("rate limited")
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return &StatusError{StatusCode: resp.StatusCode, URL: u}
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("openparl: decode %s: %w", u, err)
		}
		return nil
	}

	return fmt.Errorf("%w: GET %s after %d attempts", ErrRetriesExhausted, u, policy.Attempts)
}

func retryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
