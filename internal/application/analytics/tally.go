package analytics

import (
	"math"
	"sort"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// BuildTallies classifies every cast of every division into
// present/paired/unknown, fills in an absent record for each roster member
// with no cast, and aggregates per-division stats. Senate members appear
// in the vote records but are excluded from every stat count and from the
// roster-size denominator.
func BuildTallies(votes []*vote.Vote, castsByDivision map[int][]*vote.Cast, profiles map[string]*Profile) ([]*stats.MemberVoteRecord, []*stats.VoteStat) {
	houseSize := 0
	for _, p := range profiles {
		if !p.IsSenate {
			houseSize++
		}
	}

	var records []*stats.MemberVoteRecord
	voteStats := make([]*stats.VoteStat, 0, len(votes))

	for _, v := range votes {
		casts := castsByDivision[v.DivisionNumber]
		recorded := make(map[string]bool, len(casts))
		present := make(map[string]bool, len(casts))
		paired := make(map[string]bool)
		byParty := map[string]stats.DecisionTally{}

		for _, c := range casts {
			recorded[c.PersonID] = true
			status := castStatus(c.Decision)
			if status == stats.StatusPresent {
				present[c.PersonID] = true
			}
			if status == stats.StatusPaired {
				paired[c.PersonID] = true
			}

			prof := profiles[c.PersonID]
			rec := &stats.MemberVoteRecord{
				Parliament:     v.Parliament,
				Session:        v.Session,
				DivisionNumber: v.DivisionNumber,
				Date:           v.Date,
				PersonID:       c.PersonID,
				DecisionValue:  string(c.Decision),
				Status:         status,
			}
			if prof != nil {
				rec.MemberName = prof.Name
				rec.Party = prof.Party
				rec.Province = prof.Province
				rec.Constituency = prof.Constituency
			} else {
				rec.MemberName = c.MemberName
				rec.Party = c.Party
				rec.Province = c.Province
				rec.Constituency = c.Constituency
			}
			records = append(records, rec)

			partyKey := rec.Party
			if partyKey == "" {
				partyKey = "Unknown"
			}
			tally := byParty[partyKey]
			switch c.Decision {
			case vote.DecisionYea:
				tally.Yea++
			case vote.DecisionNay:
				tally.Nay++
			case vote.DecisionPaired:
				tally.Paired++
			case vote.DecisionAbstain:
				tally.Abstain++
			}
			byParty[partyKey] = tally
		}

		// Every roster member without a cast is recorded absent, so the
		// per-member aggregation sees a complete partition: exactly one
		// record per member per division.
		for _, pid := range sortedProfileIDs(profiles) {
			if recorded[pid] {
				continue
			}
			prof := profiles[pid]
			records = append(records, &stats.MemberVoteRecord{
				Parliament:     v.Parliament,
				Session:        v.Session,
				DivisionNumber: v.DivisionNumber,
				Date:           v.Date,
				PersonID:       pid,
				MemberName:     prof.Name,
				Party:          prof.Party,
				Province:       prof.Province,
				Constituency:   prof.Constituency,
				DecisionValue:  "Absent",
				Status:         stats.StatusAbsent,
			})
		}

		presentHouse, pairedHouse := 0, 0
		for pid := range present {
			if prof := profiles[pid]; prof != nil && !prof.IsSenate {
				presentHouse++
			}
		}
		for pid := range paired {
			if prof := profiles[pid]; prof != nil && !prof.IsSenate {
				pairedHouse++
			}
		}
		absentHouse := houseSize - presentHouse - pairedHouse
		if absentHouse < 0 {
			absentHouse = 0
		}
		participation := 0.0
		if houseSize > 0 {
			participation = round1(float64(presentHouse+pairedHouse) / float64(houseSize) * 100)
		}

		voteStats = append(voteStats, &stats.VoteStat{
			Parliament:        v.Parliament,
			Session:           v.Session,
			DivisionNumber:    v.DivisionNumber,
			Date:              v.Date,
			PresentCount:      presentHouse,
			PairedCount:       pairedHouse,
			AbsentCount:       absentHouse,
			TotalMembers:      houseSize,
			ParticipationRate: participation,
			ByParty:           byParty,
		})
	}

	return records, voteStats
}

func castStatus(d vote.Decision) string {
	switch {
	case d == vote.DecisionPaired:
		return stats.StatusPaired
	case d.CountsAsPresent():
		return stats.StatusPresent
	default:
		return stats.StatusUnknown
	}
}

func sortedProfileIDs(profiles map[string]*Profile) []string {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
