package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
)

// InterventionRepository implements intervention.Repository.
type InterventionRepository struct {
	pool *pgxpool.Pool
}

func NewInterventionRepository(pool *pgxpool.Pool) *InterventionRepository {
	return &InterventionRepository{pool: pool}
}

func (r *InterventionRepository) BulkUpsert(ctx context.Context, items []*intervention.Intervention) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		mentions, err := json.Marshal(it.BillMentions)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO interventions
			(parliament, session, person_id, intervention_id, intervention_time, intervention_type,
			 subject_of_business, publication_title, event_id, video_url, bill_mentions, hansard_page,
			 source_created_at, source_updated_at, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,NOW(),NOW())
			ON CONFLICT (parliament, session, person_id, intervention_id) DO UPDATE
			SET intervention_time=EXCLUDED.intervention_time,
				intervention_type=EXCLUDED.intervention_type,
				subject_of_business=EXCLUDED.subject_of_business,
				publication_title=EXCLUDED.publication_title,
				event_id=EXCLUDED.event_id,
				video_url=EXCLUDED.video_url,
				bill_mentions=EXCLUDED.bill_mentions,
				hansard_page=EXCLUDED.hansard_page,
				source_created_at=EXCLUDED.source_created_at,
				source_updated_at=EXCLUDED.source_updated_at,
				updated_at=NOW()
		`, it.Parliament, it.Session, it.PersonID, it.InterventionID, it.Time, it.Type,
			it.SubjectOfBusiness, it.PublicationTitle, it.EventID, it.VideoURL, mentions, it.HansardPage,
			it.SourceCreatedAt, it.SourceUpdatedAt)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *InterventionRepository) CountBySession(ctx context.Context, parliament, session string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM interventions WHERE parliament=$1 AND session=$2
	`, parliament, session).Scan(&n)
	return n, err
}

// CommitteeInterventionRepository implements intervention.CommitteeRepository.
type CommitteeInterventionRepository struct {
	pool *pgxpool.Pool
}

func NewCommitteeInterventionRepository(pool *pgxpool.Pool) *CommitteeInterventionRepository {
	return &CommitteeInterventionRepository{pool: pool}
}

func (r *CommitteeInterventionRepository) BulkUpsert(ctx context.Context, items []*intervention.CommitteeIntervention) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO committee_interventions
			(parliament, session, person_id, intervention_id, committee_meeting_id, committee_code,
			 committee_name, meeting_number, meeting_date, intervention_time, intervention_type,
			 subject_of_business, is_member, affiliation_type, person_full_name, person_constituency,
			 person_caucus, person_province, sequence_number, event_id, video_url,
			 source_created_at, source_updated_at, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,NOW(),NOW())
			ON CONFLICT (parliament, session, person_id, intervention_id) DO UPDATE
			SET committee_meeting_id=EXCLUDED.committee_meeting_id,
				committee_code=EXCLUDED.committee_code,
				committee_name=EXCLUDED.committee_name,
				meeting_number=EXCLUDED.meeting_number,
				meeting_date=EXCLUDED.meeting_date,
				intervention_time=EXCLUDED.intervention_time,
				intervention_type=EXCLUDED.intervention_type,
				subject_of_business=EXCLUDED.subject_of_business,
				is_member=EXCLUDED.is_member,
				affiliation_type=EXCLUDED.affiliation_type,
				person_full_name=EXCLUDED.person_full_name,
				person_constituency=EXCLUDED.person_constituency,
				person_caucus=EXCLUDED.person_caucus,
				person_province=EXCLUDED.person_province,
				sequence_number=EXCLUDED.sequence_number,
				event_id=EXCLUDED.event_id,
				video_url=EXCLUDED.video_url,
				source_created_at=EXCLUDED.source_created_at,
				source_updated_at=EXCLUDED.source_updated_at,
				updated_at=NOW()
		`, it.Parliament, it.Session, it.PersonID, it.InterventionID, it.CommitteeMeetingID, it.CommitteeCode,
			it.CommitteeName, it.MeetingNumber, it.MeetingDate, it.Time, it.Type, it.SubjectOfBusiness,
			it.IsMember, it.AffiliationType, it.PersonFullName, it.PersonConstituency, it.PersonCaucus,
			it.PersonProvince, it.SequenceNumber, it.EventID, it.VideoURL, it.SourceCreatedAt, it.SourceUpdatedAt)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *CommitteeInterventionRepository) CountBySession(ctx context.Context, parliament, session string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM committee_interventions WHERE parliament=$1 AND session=$2
	`, parliament, session).Scan(&n)
	return n, err
}
