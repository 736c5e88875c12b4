package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
)

// BillRepository implements bill.Repository.
type BillRepository struct {
	pool *pgxpool.Pool
}

func NewBillRepository(pool *pgxpool.Pool) *BillRepository {
	return &BillRepository{pool: pool}
}

func (r *BillRepository) Upsert(ctx context.Context, b *bill.Bill) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bills
		(number, parliament, session, title, status, sponsor_person_id, sponsor_name, introduced_date,
		 source_created_at, source_updated_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		ON CONFLICT (parliament, session, number) DO UPDATE
		SET title=EXCLUDED.title,
			status=EXCLUDED.status,
			sponsor_person_id=EXCLUDED.sponsor_person_id,
			sponsor_name=EXCLUDED.sponsor_name,
			introduced_date=EXCLUDED.introduced_date,
			source_created_at=EXCLUDED.source_created_at,
			source_updated_at=EXCLUDED.source_updated_at,
			updated_at=NOW()
	`, b.Number, b.Parliament, b.Session, b.Title, b.Status, b.SponsorPersonID, b.SponsorName, b.IntroducedDate,
		b.SourceCreatedAt, b.SourceUpdatedAt)
	return err
}

func (r *BillRepository) ListBySession(ctx context.Context, parliament, session string) ([]*bill.Bill, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, number, parliament, session, title, status, sponsor_person_id, sponsor_name, introduced_date,
			source_created_at, source_updated_at, created_at, updated_at
		FROM bills
		WHERE parliament=$1 AND session=$2
		ORDER BY number
	`, parliament, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var bills []*bill.Bill
	for rows.Next() {
		var b bill.Bill
		var title, status, sponsorID, sponsorName *string
		if err := rows.Scan(&b.ID, &b.Number, &b.Parliament, &b.Session, &title, &status, &sponsorID, &sponsorName,
			&b.IntroducedDate, &b.SourceCreatedAt, &b.SourceUpdatedAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if title != nil {
			b.Title = *title
		}
		if status != nil {
			b.Status = *status
		}
		if sponsorID != nil {
			b.SponsorPersonID = *sponsorID
		}
		if sponsorName != nil {
			b.SponsorName = *sponsorName
		}
		bills = append(bills, &b)
	}
	return bills, rows.Err()
}
