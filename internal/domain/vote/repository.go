package vote

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository persists votes.
type Repository interface {
	// Upsert inserts or updates a vote by its natural key and resets
	// casts_complete, so the cast synchronizer revisits the division.
	Upsert(ctx context.Context, v *Vote) error
	ListBySession(ctx context.Context, parliament, session string) ([]*Vote, error)
	// ListCastPending returns votes whose casts are not yet complete, or that
	// were updated after the given watermark.
	ListCastPending(ctx context.Context, parliament, session string, updatedAfter *time.Time) ([]*Vote, error)
	MarkCastsComplete(ctx context.Context, parliament, session string, divisionNumber int) error
}

// CastRepository persists vote casts.
type CastRepository interface {
	BulkUpsert(ctx context.Context, casts []*Cast) error
	ListBySession(ctx context.Context, parliament, session string) ([]*Cast, error)
	HasCastsForDivision(ctx context.Context, parliament, session string, divisionNumber int) (bool, error)
}
