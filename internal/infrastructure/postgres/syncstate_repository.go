package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

// CursorRepository implements syncstate.CursorRepository.
type CursorRepository struct {
	pool *pgxpool.Pool
}

func NewCursorRepository(pool *pgxpool.Pool) *CursorRepository {
	return &CursorRepository{pool: pool}
}

func (r *CursorRepository) Get(ctx context.Context, entity syncstate.Entity) (*time.Time, error) {
	var ts time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT last_synced_at FROM sync_cursors WHERE entity=$1
	`, string(entity)).Scan(&ts)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *CursorRepository) Set(ctx context.Context, entity syncstate.Entity, ts time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sync_cursors (entity, last_synced_at, updated_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (entity) DO UPDATE
		SET last_synced_at=EXCLUDED.last_synced_at, updated_at=NOW()
	`, string(entity), ts)
	return err
}

// RunRepository implements syncstate.RunRepository.
type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

func (r *RunRepository) Save(ctx context.Context, run *syncstate.Run) error {
	counts, err := json.Marshal(run.Counts)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO sync_runs (run_id, parliament, session, started_at, finished_at, status, error, counts)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (run_id) DO UPDATE
		SET finished_at=EXCLUDED.finished_at,
			status=EXCLUDED.status,
			error=EXCLUDED.error,
			counts=EXCLUDED.counts
	`, run.RunID, run.Parliament, run.Session, run.StartedAt, run.FinishedAt, string(run.Status), run.Error, counts)
	return err
}

func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]*syncstate.Run, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT run_id, parliament, session, started_at, finished_at, status, error, counts
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []*syncstate.Run
	for rows.Next() {
		var run syncstate.Run
		var status string
		var errMsg *string
		var counts json.RawMessage
		if err := rows.Scan(&run.RunID, &run.Parliament, &run.Session, &run.StartedAt, &run.FinishedAt,
			&status, &errMsg, &counts); err != nil {
			return nil, err
		}
		run.Status = syncstate.RunStatus(status)
		if errMsg != nil {
			run.Error = *errMsg
		}
		if err := json.Unmarshal(counts, &run.Counts); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// DeadLetterRepository implements syncstate.DeadLetterRepository.
type DeadLetterRepository struct {
	pool *pgxpool.Pool
}

func NewDeadLetterRepository(pool *pgxpool.Pool) *DeadLetterRepository {
	return &DeadLetterRepository{pool: pool}
}

func (r *DeadLetterRepository) Record(ctx context.Context, dl *syncstate.DeadLetter) error {
	key, err := json.Marshal(dl.NaturalKey)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO sync_dead_letters (entity, natural_key, error, created_at)
		VALUES ($1,$2,$3,NOW())
	`, string(dl.Entity), key, dl.Error)
	return err
}

func (r *DeadLetterRepository) ListByEntity(ctx context.Context, entity syncstate.Entity, limit int) ([]*syncstate.DeadLetter, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, entity, natural_key, error, created_at
		FROM sync_dead_letters
		WHERE entity=$1
		ORDER BY created_at DESC
		LIMIT $2
	`, string(entity), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var letters []*syncstate.DeadLetter
	for rows.Next() {
		var dl syncstate.DeadLetter
		var entityName string
		var key json.RawMessage
		if err := rows.Scan(&dl.ID, &entityName, &key, &dl.Error, &dl.CreatedAt); err != nil {
			return nil, err
		}
		dl.Entity = syncstate.Entity(entityName)
		if err := json.Unmarshal(key, &dl.NaturalKey); err != nil {
			return nil, err
		}
		letters = append(letters, &dl)
	}
	return letters, rows.Err()
}
