package intervention

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository persists floor interventions.
type Repository interface {
	BulkUpsert(ctx context.Context, items []*Intervention) error
	CountBySession(ctx context.Context, parliament, session string) (int64, error)
}

// CommitteeRepository persists committee interventions.
type CommitteeRepository interface {
	BulkUpsert(ctx context.Context, items []*CommitteeIntervention) error
	CountBySession(ctx context.Context, parliament, session string) (int64, error)
}
