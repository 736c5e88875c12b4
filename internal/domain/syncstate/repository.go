package syncstate

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// CursorRepository stores one watermark per entity.
type CursorRepository interface {
	// Get returns the stored cursor, or nil when the entity has never
	// completed a pass.
	Get(ctx context.Context, entity Entity) (*time.Time, error)
	Set(ctx context.Context, entity Entity, ts time.Time) error
}

// RunRepository persists orchestrated run summaries.
type RunRepository interface {
	Save(ctx context.Context, run *Run) error
	ListRecent(ctx context.Context, limit int) ([]*Run, error)
}

// DeadLetterRepository records failed batch writes.
type DeadLetterRepository interface {
	Record(ctx context.Context, dl *DeadLetter) error
	ListByEntity(ctx context.Context, entity Entity, limit int) ([]*DeadLetter, error)
}
