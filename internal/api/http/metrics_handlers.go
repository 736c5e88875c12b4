package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Knetic/govaluate"
	"github.com/go-chi/chi/v5"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
)

const (
	defaultMetricsLimit = 500
	maxMetricsLimit     = 500
)

func (s *Server) memberMetrics(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)
	q := r.URL.Query()

	limit := defaultMetricsLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "INVALID_PARAM", "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxMetricsLimit {
		limit = maxMetricsLimit
	}

	filter := stats.MemberStatFilter{
		Party:    q.Get("party"),
		Province: q.Get("province"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
		Limit:    limit,
	}

	var expr *govaluate.EvaluableExpression
	if raw := q.Get("filter"); raw != "" {
		var err error
		expr, err = govaluate.NewEvaluableExpression(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
			return
		}
	}

	members, err := s.stats.ListMemberStats(r.Context(), parliament, session, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	if expr != nil {
		members, err = applyMetricFilter(expr, members)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament": parliament,
		"session":    session,
		"count":      len(members),
		"members":    members,
	})
}

// applyMetricFilter keeps the members for which the expression evaluates
// to true. Expressions see the snapshot's JSON field names as variables,
// e.g. `presence_rate > 80 && party == 'Liberal'`.
func applyMetricFilter(expr *govaluate.EvaluableExpression, members []*stats.MemberStat) ([]*stats.MemberStat, error) {
	kept := make([]*stats.MemberStat, 0, len(members))
	for _, m := range members {
		params, err := metricParams(m)
		if err != nil {
			return nil, err
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			return nil, err
		}
		if keep, ok := result.(bool); ok && keep {
			kept = append(kept, m)
		}
	}
	return kept, nil
}

func metricParams(m *stats.MemberStat) (map[string]interface{}, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	return params, nil
}

func (s *Server) memberMetricDetail(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personId")
	parliament, session := s.session(r)

	detail, err := s.analytics.MemberDetail(r.Context(), parliament, session, personID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if detail == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "member not found")
		return
	}

	// Roster record carries the election history and roles the snapshot
	// flattens into counts.
	roster, err := s.members.GetByPersonID(r.Context(), personID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	// Counts from the synchronized intervention tables, alongside the
	// source-provided aggregates in the snapshot.
	floorCount, err := s.interventions.CountBySession(r.Context(), parliament, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	committeeCount, err := s.committee.CountBySession(r.Context(), parliament, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament": parliament,
		"session":    session,
		"member":     detail.Member,
		"roster":     roster,
		"comparisons": map[string]interface{}{
			"party":    detail.Party,
			"province": detail.Province,
		},
		"session_totals": map[string]interface{}{
			"interventions_synced":           floorCount,
			"committee_interventions_synced": committeeCount,
		},
	})
}
