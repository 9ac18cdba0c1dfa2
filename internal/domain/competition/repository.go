package competition

import "context"

// Repository describes competition lookups needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Competition, error)
	ListByGender(ctx context.Context, gender string) ([]Competition, error)
	GetByID(ctx context.Context, competitionID string) (Competition, bool, error)
}
