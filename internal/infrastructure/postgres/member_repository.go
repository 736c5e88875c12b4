package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commons-pulse/commons-pulse/internal/domain/member"
)

// MemberRepository implements member.Repository.
type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

func (r *MemberRepository) Upsert(ctx context.Context, m *member.Member) error {
	elections, err := json.Marshal(m.ElectionHistory)
	if err != nil {
		return err
	}
	committees, err := json.Marshal(m.Committees)
	if err != nil {
		return err
	}
	associations, err := json.Marshal(m.Associations)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO members
		(person_id, full_name, chamber, party, caucus_short_name, province, constituency, from_datetime,
		 political_alignment_score, debate_intervention_count, committee_intervention_count, bills_sponsored,
		 election_history, committees, associations, source_created_at, source_updated_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,NOW(),NOW())
		ON CONFLICT (person_id) DO UPDATE
		SET full_name=EXCLUDED.full_name,
			chamber=EXCLUDED.chamber,
			party=EXCLUDED.party,
			caucus_short_name=EXCLUDED.caucus_short_name,
			province=EXCLUDED.province,
			constituency=EXCLUDED.constituency,
			from_datetime=EXCLUDED.from_datetime,
			political_alignment_score=EXCLUDED.political_alignment_score,
			debate_intervention_count=EXCLUDED.debate_intervention_count,
			committee_intervention_count=EXCLUDED.committee_intervention_count,
			bills_sponsored=EXCLUDED.bills_sponsored,
			election_history=EXCLUDED.election_history,
			committees=EXCLUDED.committees,
			associations=EXCLUDED.associations,
			source_created_at=EXCLUDED.source_created_at,
			source_updated_at=EXCLUDED.source_updated_at,
			updated_at=NOW()
	`, m.PersonID, m.FullName, m.Chamber, m.Party, m.CaucusShortName, m.Province, m.Constituency, m.FromDatetime,
		m.PoliticalAlignmentScore, m.DebateInterventionCount, m.CommitteeInterventionCount, m.BillsSponsored,
		elections, committees, associations, m.SourceCreatedAt, m.SourceUpdatedAt)
	return err
}

func (r *MemberRepository) GetByPersonID(ctx context.Context, personID string) (*member.Member, error) {
	row := r.pool.QueryRow(ctx, memberSelect+` WHERE person_id=$1`, personID)
	m, err := scanMember(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *MemberRepository) List(ctx context.Context) ([]*member.Member, error) {
	rows, err := r.pool.Query(ctx, memberSelect+` ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var members []*member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM members`).Scan(&n)
	return n, err
}

const memberSelect = `
	SELECT id, person_id, full_name, chamber, party, caucus_short_name, province, constituency, from_datetime,
		political_alignment_score, debate_intervention_count, committee_intervention_count, bills_sponsored,
		election_history, committees, associations, source_created_at, source_updated_at, created_at, updated_at
	FROM members`

func scanMember(row pgx.Row) (*member.Member, error) {
	var m member.Member
	var party, caucus, province, constituency *string
	var elections, committees, associations json.RawMessage
	if err := row.Scan(&m.ID, &m.PersonID, &m.FullName, &m.Chamber, &party, &caucus, &province, &constituency,
		&m.FromDatetime, &m.PoliticalAlignmentScore, &m.DebateInterventionCount, &m.CommitteeInterventionCount,
		&m.BillsSponsored, &elections, &committees, &associations, &m.SourceCreatedAt, &m.SourceUpdatedAt,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if party != nil {
		m.Party = *party
	}
	if caucus != nil {
		m.CaucusShortName = *caucus
	}
	if province != nil {
		m.Province = *province
	}
	if constituency != nil {
		m.Constituency = *constituency
	}
	if err := json.Unmarshal(elections, &m.ElectionHistory); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(committees, &m.Committees); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(associations, &m.Associations); err != nil {
		return nil, err
	}
	return &m, nil
}
