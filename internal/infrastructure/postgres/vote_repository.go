package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
)

// VoteRepository implements vote.Repository.
type VoteRepository struct {
	pool *pgxpool.Pool
}

func NewVoteRepository(pool *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{pool: pool}
}

func (r *VoteRepository) Upsert(ctx context.Context, v *vote.Vote) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO votes
		(parliament, session, division_number, vote_date, subject, result, bill_number, casts_complete,
		 source_created_at, source_updated_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,FALSE,$8,$9,NOW(),NOW())
		ON CONFLICT (parliament, session, division_number) DO UPDATE
		SET vote_date=EXCLUDED.vote_date,
			subject=EXCLUDED.subject,
			result=EXCLUDED.result,
			bill_number=EXCLUDED.bill_number,
			casts_complete=FALSE,
			source_created_at=EXCLUDED.source_created_at,
			source_updated_at=EXCLUDED.source_updated_at,
			updated_at=NOW()
	`, v.Parliament, v.Session, v.DivisionNumber, v.Date, v.Subject, v.Result, v.BillNumber,
		v.SourceCreatedAt, v.SourceUpdatedAt)
	return err
}

func (r *VoteRepository) ListBySession(ctx context.Context, parliament, session string) ([]*vote.Vote, error) {
	rows, err := r.pool.Query(ctx, voteSelect+`
		WHERE parliament=$1 AND session=$2
		ORDER BY division_number
	`, parliament, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVotes(rows)
}

func (r *VoteRepository) ListCastPending(ctx context.Context, parliament, session string, updatedAfter *time.Time) ([]*vote.Vote, error) {
	query := voteSelect + ` WHERE parliament=$1 AND session=$2 AND casts_complete=FALSE`
	args := []any{parliament, session}
	if updatedAfter != nil {
		query = voteSelect + ` WHERE parliament=$1 AND session=$2 AND (casts_complete=FALSE OR updated_at > $3)`
		args = append(args, *updatedAfter)
	}
	query += ` ORDER BY division_number`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVotes(rows)
}

func (r *VoteRepository) MarkCastsComplete(ctx context.Context, parliament, session string, divisionNumber int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE votes SET casts_complete=TRUE, updated_at=NOW()
		WHERE parliament=$1 AND session=$2 AND division_number=$3
	`, parliament, session, divisionNumber)
	return err
}

const voteSelect = `
	SELECT id, parliament, session, division_number, vote_date, subject, result, bill_number, casts_complete,
		source_created_at, source_updated_at, created_at, updated_at
	FROM votes`

func collectVotes(rows pgx.Rows) ([]*vote.Vote, error) {
	var votes []*vote.Vote
	for rows.Next() {
		var v vote.Vote
		var subject, result, billNumber *string
		if err := rows.Scan(&v.ID, &v.Parliament, &v.Session, &v.DivisionNumber, &v.Date, &subject, &result,
			&billNumber, &v.CastsComplete, &v.SourceCreatedAt, &v.SourceUpdatedAt, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		if subject != nil {
			v.Subject = *subject
		}
		if result != nil {
			v.Result = *result
		}
		if billNumber != nil {
			v.BillNumber = *billNumber
		}
		votes = append(votes, &v)
	}
	return votes, rows.Err()
}

// CastRepository implements vote.CastRepository.
type CastRepository struct {
	pool *pgxpool.Pool
}

func NewCastRepository(pool *pgxpool.Pool) *CastRepository {
	return &CastRepository{pool: pool}
}

func (r *CastRepository) BulkUpsert(ctx context.Context, casts []*vote.Cast) error {
	if len(casts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range casts {
		batch.Queue(`
			INSERT INTO vote_casts
			(parliament, session, division_number, person_id, decision, member_name, party, province, constituency, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
			ON CONFLICT (parliament, session, division_number, person_id) DO UPDATE
			SET decision=EXCLUDED.decision,
				member_name=EXCLUDED.member_name,
				party=EXCLUDED.party,
				province=EXCLUDED.province,
				constituency=EXCLUDED.constituency,
				updated_at=NOW()
		`, c.Parliament, c.Session, c.DivisionNumber, c.PersonID, string(c.Decision), c.MemberName, c.Party, c.Province, c.Constituency)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range casts {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *CastRepository) ListBySession(ctx context.Context, parliament, session string) ([]*vote.Cast, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, parliament, session, division_number, person_id, decision, member_name, party, province, constituency, created_at, updated_at
		FROM vote_casts
		WHERE parliament=$1 AND session=$2
		ORDER BY division_number, person_id
	`, parliament, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var casts []*vote.Cast
	for rows.Next() {
		var c vote.Cast
		var decision string
		var memberName, party, province, constituency *string
		if err := rows.Scan(&c.ID, &c.Parliament, &c.Session, &c.DivisionNumber, &c.PersonID, &decision,
			&memberName, &party, &province, &constituency, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Decision = vote.Decision(decision)
		if memberName != nil {
			c.MemberName = *memberName
		}
		if party != nil {
			c.Party = *party
		}
		if province != nil {
			c.Province = *province
		}
		if constituency != nil {
			c.Constituency = *constituency
		}
		casts = append(casts, &c)
	}
	return casts, rows.Err()
}

func (r *CastRepository) HasCastsForDivision(ctx context.Context, parliament, session string, divisionNumber int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM vote_casts WHERE parliament=$1 AND session=$2 AND division_number=$3
		)
	`, parliament, session, divisionNumber).Scan(&exists)
	return exists, err
}
