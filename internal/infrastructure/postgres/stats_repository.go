package postgres

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
)

// StatsRepository implements stats.Repository.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) ReplaceSession(ctx context.Context, parliament, session string, records []*stats.MemberVoteRecord, voteStats []*stats.VoteStat, memberStats []*stats.MemberStat) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"member_vote_records", "vote_stats", "member_stats"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE parliament=$1 AND session=$2`, parliament, session); err != nil {
			return err
		}
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
			INSERT INTO member_vote_records
			(parliament, session, division_number, vote_date, person_id, member_name, party, province, constituency, decision_value, status)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		`, rec.Parliament, rec.Session, rec.DivisionNumber, rec.Date, rec.PersonID, rec.MemberName,
			rec.Party, rec.Province, rec.Constituency, rec.DecisionValue, rec.Status)
	}
	for _, vs := range voteStats {
		byParty, err := json.Marshal(vs.ByParty)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO vote_stats
			(parliament, session, division_number, vote_date, present_count, paired_count, absent_count, total_members, participation_rate, by_party)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, vs.Parliament, vs.Session, vs.DivisionNumber, vs.Date, vs.PresentCount, vs.PairedCount,
			vs.AbsentCount, vs.TotalMembers, vs.ParticipationRate, byParty)
	}
	for _, ms := range memberStats {
		rankings, err := json.Marshal(ms.Rankings)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO member_stats
			(parliament, session, person_id, name, party, caucus_short_name, chamber, province, constituency,
			 political_alignment_score, present, paired, absent, total_votes, presence_rate, tenure_months,
			 years_in_house, elections_won, committees_count, associations_count, interventions_count,
			 interventions_per_month, committee_interventions_count, committee_per_month, bills_sponsored,
			 activity_index_score, rankings, metrics_version, computed_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)
		`, ms.Parliament, ms.Session, ms.PersonID, ms.Name, ms.Party, ms.CaucusShortName, ms.Chamber,
			ms.Province, ms.Constituency, ms.PoliticalAlignmentScore, ms.Present, ms.Paired, ms.Absent,
			ms.TotalVotes, ms.PresenceRate, ms.TenureMonths, ms.YearsInHouse, ms.ElectionsWon,
			ms.CommitteesCount, ms.AssociationsCount, ms.InterventionsCount, ms.InterventionsPerMonth,
			ms.CommitteeInterventionsCount, ms.CommitteePerMonth, ms.BillsSponsored, ms.ActivityIndexScore,
			rankings, ms.MetricsVersion, ms.ComputedAt)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return err
		}
	}
	if err := results.Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *StatsRepository) ListMemberVoteRecords(ctx context.Context, parliament, session string) ([]*stats.MemberVoteRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT parliament, session, division_number, vote_date, person_id, member_name, party, province, constituency, decision_value, status
		FROM member_vote_records
		WHERE parliament=$1 AND session=$2
		ORDER BY division_number, person_id
	`, parliament, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []*stats.MemberVoteRecord
	for rows.Next() {
		var rec stats.MemberVoteRecord
		var memberName, party, province, constituency *string
		if err := rows.Scan(&rec.Parliament, &rec.Session, &rec.DivisionNumber, &rec.Date, &rec.PersonID,
			&memberName, &party, &province, &constituency, &rec.DecisionValue, &rec.Status); err != nil {
			return nil, err
		}
		if memberName != nil {
			rec.MemberName = *memberName
		}
		if party != nil {
			rec.Party = *party
		}
		if province != nil {
			rec.Province = *province
		}
		if constituency != nil {
			rec.Constituency = *constituency
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *StatsRepository) ListVoteStats(ctx context.Context, parliament, session string) ([]*stats.VoteStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT parliament, session, division_number, vote_date, present_count, paired_count, absent_count, total_members, participation_rate, by_party
		FROM vote_stats
		WHERE parliament=$1 AND session=$2
		ORDER BY division_number
	`, parliament, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var voteStats []*stats.VoteStat
	for rows.Next() {
		var vs stats.VoteStat
		var byParty json.RawMessage
		if err := rows.Scan(&vs.Parliament, &vs.Session, &vs.DivisionNumber, &vs.Date, &vs.PresentCount,
			&vs.PairedCount, &vs.AbsentCount, &vs.TotalMembers, &vs.ParticipationRate, &byParty); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(byParty, &vs.ByParty); err != nil {
			return nil, err
		}
		voteStats = append(voteStats, &vs)
	}
	return voteStats, rows.Err()
}

// sortColumns whitelists sortable member-stat columns.
var sortColumns = map[string]string{
	stats.MetricPresenceRate:           "presence_rate",
	stats.MetricTenureMonths:           "tenure_months",
	stats.MetricInterventions:          "interventions_count",
	stats.MetricCommitteeInterventions: "committee_interventions_count",
	stats.MetricBillsSponsored:         "bills_sponsored",
	stats.MetricActivityIndex:          "activity_index_score",
	stats.MetricCommittees:             "committees_count",
	stats.MetricAssociations:           "associations_count",
	"name":                             "name",
}

func (r *StatsRepository) ListMemberStats(ctx context.Context, parliament, session string, filter stats.MemberStatFilter) ([]*stats.MemberStat, error) {
	query := memberStatSelect + ` WHERE parliament=$1 AND session=$2`
	args := []any{parliament, session}
	if filter.Party != "" {
		args = append(args, filter.Party)
		query += ` AND party=$` + strconv.Itoa(len(args))
	}
	if filter.Province != "" {
		args = append(args, filter.Province)
		query += ` AND province=$` + strconv.Itoa(len(args))
	}

	column, ok := sortColumns[filter.Sort]
	if !ok {
		column = "activity_index_score"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}
	query += ` ORDER BY ` + column + ` ` + direction + `, person_id ASC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var memberStats []*stats.MemberStat
	for rows.Next() {
		ms, err := scanMemberStat(rows)
		if err != nil {
			return nil, err
		}
		memberStats = append(memberStats, ms)
	}
	return memberStats, rows.Err()
}

func (r *StatsRepository) GetMemberStat(ctx context.Context, parliament, session, personID string) (*stats.MemberStat, error) {
	row := r.pool.QueryRow(ctx, memberStatSelect+` WHERE parliament=$1 AND session=$2 AND person_id=$3`,
		parliament, session, personID)
	ms, err := scanMemberStat(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return ms, err
}

func (r *StatsRepository) TouchSessionSync(ctx context.Context, parliament, session string, totalVotes int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (parliament, session, total_votes, last_synced_at, created_at, updated_at)
		VALUES ($1,$2,$3,NOW(),NOW(),NOW())
		ON CONFLICT (parliament, session) DO UPDATE
		SET total_votes=EXCLUDED.total_votes, last_synced_at=NOW(), updated_at=NOW()
	`, parliament, session, totalVotes)
	return err
}

func (r *StatsRepository) RecordSessionCompute(ctx context.Context, parliament, session string, totalVotes, membersComputed int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (parliament, session, total_votes, members_computed, last_computed_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW(),NOW())
		ON CONFLICT (parliament, session) DO UPDATE
		SET total_votes=EXCLUDED.total_votes,
			members_computed=EXCLUDED.members_computed,
			last_computed_at=NOW(),
			updated_at=NOW()
	`, parliament, session, totalVotes, membersComputed)
	return err
}

func (r *StatsRepository) GetSessionFacts(ctx context.Context, parliament, session string) (*stats.SessionFacts, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT parliament, session, total_votes, members_computed, last_synced_at, last_computed_at
		FROM sessions
		WHERE parliament=$1 AND session=$2
	`, parliament, session)
	var facts stats.SessionFacts
	err := row.Scan(&facts.Parliament, &facts.Session, &facts.TotalVotes, &facts.MembersComputed,
		&facts.LastSyncAt, &facts.ComputedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &facts, nil
}

const memberStatSelect = `
	SELECT parliament, session, person_id, name, party, caucus_short_name, chamber, province, constituency,
		political_alignment_score, present, paired, absent, total_votes, presence_rate, tenure_months,
		years_in_house, elections_won, committees_count, associations_count, interventions_count,
		interventions_per_month, committee_interventions_count, committee_per_month, bills_sponsored,
		activity_index_score, rankings, metrics_version, computed_at
	FROM member_stats`

func scanMemberStat(row pgx.Row) (*stats.MemberStat, error) {
	var ms stats.MemberStat
	var name, party, caucus, chamber, province, constituency *string
	var rankings json.RawMessage
	if err := row.Scan(&ms.Parliament, &ms.Session, &ms.PersonID, &name, &party, &caucus, &chamber, &province,
		&constituency, &ms.PoliticalAlignmentScore, &ms.Present, &ms.Paired, &ms.Absent, &ms.TotalVotes,
		&ms.PresenceRate, &ms.TenureMonths, &ms.YearsInHouse, &ms.ElectionsWon, &ms.CommitteesCount,
		&ms.AssociationsCount, &ms.InterventionsCount, &ms.InterventionsPerMonth,
		&ms.CommitteeInterventionsCount, &ms.CommitteePerMonth, &ms.BillsSponsored, &ms.ActivityIndexScore,
		&rankings, &ms.MetricsVersion, &ms.ComputedAt); err != nil {
		return nil, err
	}
	if name != nil {
		ms.Name = *name
	}
	if party != nil {
		ms.Party = *party
	}
	if caucus != nil {
		ms.CaucusShortName = *caucus
	}
	if chamber != nil {
		ms.Chamber = *chamber
	}
	if province != nil {
		ms.Province = *province
	}
	if constituency != nil {
		ms.Constituency = *constituency
	}
	if err := json.Unmarshal(rankings, &ms.Rankings); err != nil {
		return nil, err
	}
	return &ms, nil
}
