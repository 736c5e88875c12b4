package member

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository persists members.
type Repository interface {
	// Upsert inserts or updates a member by person_id. created_at is set
	// only on insert; updated_at is set on every write.
	Upsert(ctx context.Context, m *Member) error
	GetByPersonID(ctx context.Context, personID string) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	Count(ctx context.Context) (int64, error)
}
