package httpapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
)

var exportHeaders = []string{
	"person_id", "name", "full_name", "party", "caucus_short_name", "province", "constituency",
	"presence_rate", "present", "paired", "absent", "total_votes",
	"tenure_months", "years_in_house", "elections_won",
	"interventions_count", "interventions_per_month",
	"committee_interventions_count", "committee_per_month",
	"bills_sponsored", "committees_count", "associations_count",
	"activity_index_score", "activity_index_rank", "activity_index_percentile",
	"metrics_version", "computed_at",
}

// exportMembersCSV streams the session's member snapshots merged with
// roster fields, one row per computed member.
func (s *Server) exportMembersCSV(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)

	memberStats, err := s.stats.ListMemberStats(r.Context(), parliament, session, stats.MemberStatFilter{Sort: "name", Order: "asc"})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	roster, err := s.members.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	byPersonID := make(map[string]*member.Member, len(roster))
	for _, m := range roster {
		byPersonID[m.PersonID] = m
	}

	filename := fmt.Sprintf("house_members_data_p%s_s%s.csv", parliament, session)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(exportHeaders)
	for _, ms := range memberStats {
		fullName := ""
		if m := byPersonID[ms.PersonID]; m != nil {
			fullName = m.FullName
		}
		activity := ms.Rankings[stats.MetricActivityIndex]
		_ = cw.Write([]string{
			ms.PersonID, ms.Name, fullName, ms.Party, ms.CaucusShortName, ms.Province, ms.Constituency,
			formatFloat(ms.PresenceRate), strconv.Itoa(ms.Present), strconv.Itoa(ms.Paired), strconv.Itoa(ms.Absent), strconv.Itoa(ms.TotalVotes),
			strconv.Itoa(ms.TenureMonths), strconv.Itoa(ms.YearsInHouse), strconv.Itoa(ms.ElectionsWon),
			strconv.Itoa(ms.InterventionsCount), formatFloat(ms.InterventionsPerMonth),
			strconv.Itoa(ms.CommitteeInterventionsCount), formatFloat(ms.CommitteePerMonth),
			strconv.Itoa(ms.BillsSponsored), strconv.Itoa(ms.CommitteesCount), strconv.Itoa(ms.AssociationsCount),
			formatFloat(ms.ActivityIndexScore), strconv.Itoa(activity.Rank), strconv.Itoa(activity.Percentile),
			ms.MetricsVersion, ms.ComputedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
