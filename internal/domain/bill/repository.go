package bill

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository persists bills.
type Repository interface {
	Upsert(ctx context.Context, b *Bill) error
	ListBySession(ctx context.Context, parliament, session string) ([]*Bill, error)
}
