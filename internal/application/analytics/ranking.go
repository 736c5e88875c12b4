package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
)

// Activity-index component weights. They sum to 1, so the composite score
// lands on a 0-10 scale after the *10 step.
const (
	weightInterventions          = 1.0 / 3.0
	weightCommitteeInterventions = 4.0 / 15.0
	weightBills                  = 1.0 / 5.0
	weightCommittees             = 2.0 / 15.0
	weightAssociations           = 1.0 / 15.0
)

type voteTotals struct {
	present int
	paired  int
	absent  int
	total   int
}

// BuildMemberStats aggregates the session's vote records per member, joins
// the roster profiles, and produces the ranked House-only metric set.
// Senate members and casts from unknown persons are dropped here.
func BuildMemberStats(parliament, session string, records []*stats.MemberVoteRecord, profiles map[string]*Profile, computedAt time.Time) []*stats.MemberStat {
	totals := map[string]*voteTotals{}
	for _, rec := range records {
		t := totals[rec.PersonID]
		if t == nil {
			t = &voteTotals{}
			totals[rec.PersonID] = t
		}
		switch rec.Status {
		case stats.StatusPresent:
			t.present++
		case stats.StatusPaired:
			t.paired++
		case stats.StatusAbsent:
			t.absent++
		}
		t.total++
	}

	members := make([]*stats.MemberStat, 0, len(totals))
	for _, pid := range sortedProfileIDs(profiles) {
		prof := profiles[pid]
		if prof.IsSenate {
			continue
		}
		t := totals[pid]
		if t == nil {
			continue
		}

		presenceRate := 0.0
		if t.total > 0 {
			presenceRate = round1(float64(t.present+t.paired) / float64(t.total) * 100)
		}

		// The source's party field is unreliable for sitting members, so
		// the caucus short name wins when present.
		party := prof.CaucusShortName
		if party == "" {
			party = prof.Party
		}
		if party == "" {
			party = "Independent"
		}

		perMonth, committeePerMonth := 0.0, 0.0
		if prof.TenureMonths > 0 {
			perMonth = round2(float64(prof.InterventionsCount) / float64(prof.TenureMonths))
			committeePerMonth = round2(float64(prof.CommitteeInterventionsCount) / float64(prof.TenureMonths))
		}

		members = append(members, &stats.MemberStat{
			Parliament:              parliament,
			Session:                 session,
			PersonID:                pid,
			Name:                    prof.Name,
			Party:                   party,
			CaucusShortName:         prof.CaucusShortName,
			Chamber:                 prof.Chamber,
			Province:                prof.Province,
			Constituency:            prof.Constituency,
			PoliticalAlignmentScore: prof.PoliticalAlignmentScore,

			Present:      t.present,
			Paired:       t.paired,
			Absent:       t.absent,
			TotalVotes:   t.total,
			PresenceRate: presenceRate,

			TenureMonths: prof.TenureMonths,
			YearsInHouse: prof.YearsInHouse,
			ElectionsWon: prof.ElectionsWon,

			CommitteesCount:   prof.CommitteesCount,
			AssociationsCount: prof.AssociationsCount,

			InterventionsCount:          prof.InterventionsCount,
			InterventionsPerMonth:       perMonth,
			CommitteeInterventionsCount: prof.CommitteeInterventionsCount,
			CommitteePerMonth:           committeePerMonth,
			BillsSponsored:              prof.BillsSponsored,

			MetricsVersion: stats.MetricsVersion,
			ComputedAt:     computedAt,
		})
	}

	ScoreActivity(members)
	RankMetrics(members)
	return members
}

// ScoreActivity assigns each member's composite activity index. Each
// component is the member's count relative to the cohort mean, capped at 1
// and scaled by the component weight; a cohort mean of zero zeroes the
// component outright.
func ScoreActivity(members []*stats.MemberStat) {
	n := float64(len(members))
	if n == 0 {
		return
	}

	var sumInterventions, sumCommitteeInterventions, sumBills, sumCommittees, sumAssociations float64
	for _, m := range members {
		sumInterventions += float64(m.InterventionsCount)
		sumCommitteeInterventions += float64(m.CommitteeInterventionsCount)
		sumBills += float64(m.BillsSponsored)
		sumCommittees += float64(m.CommitteesCount)
		sumAssociations += float64(m.AssociationsCount)
	}

	for _, m := range members {
		score := component(float64(m.InterventionsCount), sumInterventions/n, weightInterventions) +
			component(float64(m.CommitteeInterventionsCount), sumCommitteeInterventions/n, weightCommitteeInterventions) +
			component(float64(m.BillsSponsored), sumBills/n, weightBills) +
			component(float64(m.CommitteesCount), sumCommittees/n, weightCommittees) +
			component(float64(m.AssociationsCount), sumAssociations/n, weightAssociations)
		m.ActivityIndexScore = round2(score * 10)
	}
}

func component(value, mean, weight float64) float64 {
	if mean <= 0 {
		return 0
	}
	c := (value / mean) * weight
	if c > weight {
		return weight
	}
	return c
}

// RankMetrics computes rank, percentile and within-party percentile for
// every ranked metric. Ordering is descending by value; equal values are
// broken by ascending person_id so repeated computes rank identically.
func RankMetrics(members []*stats.MemberStat) {
	for _, m := range members {
		m.Rankings = make(map[string]stats.Ranking, len(stats.RankedMetrics))
	}

	for _, metric := range stats.RankedMetrics {
		rankCohort(members, metric, func(m *stats.MemberStat, idx, n int) {
			r := m.Rankings[metric]
			r.Rank = idx + 1
			r.Percentile = percentile(idx, n)
			m.Rankings[metric] = r
		})

		byParty := map[string][]*stats.MemberStat{}
		for _, m := range members {
			byParty[m.Party] = append(byParty[m.Party], m)
		}
		for _, cohort := range byParty {
			rankCohort(cohort, metric, func(m *stats.MemberStat, idx, n int) {
				r := m.Rankings[metric]
				r.PercentileInParty = percentile(idx, n)
				m.Rankings[metric] = r
			})
		}
	}
}

func rankCohort(members []*stats.MemberStat, metric string, assign func(m *stats.MemberStat, idx, n int)) {
	sorted := make([]*stats.MemberStat, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := sorted[i].MetricValue(metric), sorted[j].MetricValue(metric)
		if vi != vj {
			return vi > vj
		}
		return sorted[i].PersonID < sorted[j].PersonID
	})
	for idx, m := range sorted {
		assign(m, idx, len(sorted))
	}
}

// percentile follows round((N - rank + 1) / N * 100) with rank = idx+1:
// the top member of any cohort is always the 100th percentile.
func percentile(idx, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(n-idx) / float64(n) * 100))
}
